package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"livestock-records/internal/domain/validation"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
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

type CreateInput struct {
	Name      string
	Breed     string
	Sex       Sex
	BirthDate *time.Time

	SireName     *string
	SireRegistry *string
	SireBreed    *string
	DamName      *string
	DamRegistry  *string
	DamBreed     *string
}

// UpdateInput no tiene FarmerID a propósito: la propiedad del animal es
// inmutable después del create.
type UpdateInput struct {
	Name      string
	Breed     string
	Sex       Sex
	BirthDate *time.Time

	SireName     *string
	SireRegistry *string
	SireBreed    *string
	DamName      *string
	DamRegistry  *string
	DamBreed     *string
}

func (s *Service) Create(ctx context.Context, farmerID string, in CreateInput) (Animal, error) {
	if strings.TrimSpace(farmerID) == "" {
		return Animal{}, validation.Required("farmer_id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, validation.Required("name")
	}
	if in.Sex != SexMale && in.Sex != SexFemale {
		return Animal{}, validation.Required("sex")
	}

	now := s.now()
	a := Animal{
		ID:           uuid.NewString(),
		FarmerID:     farmerID,
		Name:         strings.TrimSpace(in.Name),
		Breed:        strings.TrimSpace(in.Breed),
		Sex:          in.Sex,
		BirthDate:    in.BirthDate,
		SireName:     trimPtr(in.SireName),
		SireRegistry: trimPtr(in.SireRegistry),
		SireBreed:    trimPtr(in.SireBreed),
		DamName:      trimPtr(in.DamName),
		DamRegistry:  trimPtr(in.DamRegistry),
		DamBreed:     trimPtr(in.DamBreed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, validation.Required("name")
	}
	if in.Sex != SexMale && in.Sex != SexFemale {
		return Animal{}, validation.Required("sex")
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	// FarmerID y CreatedAt se copian del row actual, jamás del input.
	current.Name = strings.TrimSpace(in.Name)
	current.Breed = strings.TrimSpace(in.Breed)
	current.Sex = in.Sex
	current.BirthDate = in.BirthDate
	current.SireName = trimPtr(in.SireName)
	current.SireRegistry = trimPtr(in.SireRegistry)
	current.SireBreed = trimPtr(in.SireBreed)
	current.DamName = trimPtr(in.DamName)
	current.DamRegistry = trimPtr(in.DamRegistry)
	current.DamBreed = trimPtr(in.DamBreed)
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Animal{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByFarmer(ctx context.Context, farmerID string) ([]Animal, error) {
	return s.repo.ListByFarmer(ctx, farmerID)
}

// trimPtr normaliza opcionales: espacios fuera, vacío => nil (campo no seteado).
func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
