package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// VaccineRecorder registra la vacuna asociada a un evento VACCINATION.
// Interfaz local para no importar el paquete vaccines; la implementa
// vaccines.Service.
type VaccineRecorder interface {
	RecordVaccine(ctx context.Context, animalID, name string, appliedAt time.Time, expiresAt *time.Time) error
}

type Service struct {
	repo     Repository
	vaccines VaccineRecorder
	now      func() time.Time
}

func NewService(repo Repository, vaccines VaccineRecorder) *Service {
	return &Service{
		repo:     repo,
		vaccines: vaccines,
		now:      time.Now,
	}
}

type CreateInput struct {
	Type        EventType
	EventDate   time.Time
	Description string
}

// VaccineInput son los campos extra cuando Type = VACCINATION.
type VaccineInput struct {
	Name      string
	ExpiresAt *time.Time
}

// Record crea el evento y, si es VACCINATION con nombre de vacuna, escribe
// también el registro de vacuna. Los dos writes son secuenciales y SIN
// transacción: si falla el segundo, el evento ya quedó escrito y no se
// revierte. Decisión de producto pendiente; acá no se agrega rollback.
func (s *Service) Record(ctx context.Context, animalID string, in CreateInput, vac *VaccineInput) (AnimalEvent, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return AnimalEvent{}, ErrInvalidInput
	}
	if !in.Type.Valid() {
		return AnimalEvent{}, ErrInvalidInput
	}
	if in.EventDate.IsZero() {
		return AnimalEvent{}, ErrInvalidInput
	}

	e := AnimalEvent{
		ID:          uuid.NewString(),
		AnimalID:    animalID,
		Type:        in.Type,
		EventDate:   in.EventDate,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return AnimalEvent{}, err
	}

	if e.Type == EventTypeVaccination && vac != nil && strings.TrimSpace(vac.Name) != "" {
		if err := s.vaccines.RecordVaccine(ctx, animalID, vac.Name, e.EventDate, vac.ExpiresAt); err != nil {
			return AnimalEvent{}, err
		}
	}

	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (AnimalEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return AnimalEvent{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByAnimal(ctx context.Context, animalID string) ([]AnimalEvent, error) {
	return s.repo.ListByAnimal(ctx, animalID)
}

// UpdateInput es un patch: nil = no tocar el campo.
type UpdateInput struct {
	Type        *EventType
	EventDate   *time.Time
	Description *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (AnimalEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return AnimalEvent{}, ErrInvalidInput
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return AnimalEvent{}, err
	}

	if in.Type != nil {
		if !in.Type.Valid() {
			return AnimalEvent{}, ErrInvalidInput
		}
		e.Type = *in.Type
	}
	if in.EventDate != nil {
		if in.EventDate.IsZero() {
			return AnimalEvent{}, ErrInvalidInput
		}
		e.EventDate = *in.EventDate
	}
	if in.Description != nil {
		e.Description = strings.TrimSpace(*in.Description)
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return AnimalEvent{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
