package vaccines

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RecordInput struct {
	AnimalID  string
	Name      string
	AppliedAt time.Time
	ExpiresAt *time.Time // opcional; solo se usa para derivar la validez
}

// Record crea el registro de vacuna. La validez se calcula acá y el
// vencimiento crudo se descarta.
func (s *Service) Record(ctx context.Context, in RecordInput) (Vaccine, error) {
	if strings.TrimSpace(in.AnimalID) == "" {
		return Vaccine{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Vaccine{}, ErrInvalidInput
	}
	if in.AppliedAt.IsZero() {
		return Vaccine{}, ErrInvalidInput
	}

	applied := in.AppliedAt
	v := Vaccine{
		ID:           uuid.NewString(),
		AnimalID:     in.AnimalID,
		Name:         strings.TrimSpace(in.Name),
		AppliedAt:    applied,
		ValidityDays: ValidityDays(&applied, in.ExpiresAt),
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Vaccine{}, err
	}
	return v, nil
}

// RecordVaccine es la forma que consume el módulo events (interfaz local
// allá para no generar ciclo de imports).
func (s *Service) RecordVaccine(ctx context.Context, animalID, name string, appliedAt time.Time, expiresAt *time.Time) error {
	_, err := s.Record(ctx, RecordInput{
		AnimalID:  animalID,
		Name:      name,
		AppliedAt: appliedAt,
		ExpiresAt: expiresAt,
	})
	return err
}

func (s *Service) ListByAnimal(ctx context.Context, animalID string) ([]Vaccine, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByAnimal(ctx, animalID)
}
