package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"livestock-records/internal/domain/vaccines"
)

type vaccinesRepo struct {
	mu   sync.RWMutex
	byID map[string]vaccines.Vaccine
}

func NewVaccinesRepo() vaccines.Repository {
	return &vaccinesRepo{
		byID: make(map[string]vaccines.Vaccine),
	}
}

func (r *vaccinesRepo) Create(ctx context.Context, v vaccines.Vaccine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("vaccine id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("vaccine already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *vaccinesRepo) ListByAnimal(ctx context.Context, animalID string) ([]vaccines.Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vaccines.Vaccine, 0)
	for _, v := range r.byID {
		if v.AnimalID == animalID {
			out = append(out, v)
		}
	}

	// Aplicación descendente, como el SELECT de postgres.
	sort.Slice(out, func(i, j int) bool {
		if out[i].AppliedAt.Equal(out[j].AppliedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].AppliedAt.After(out[j].AppliedAt)
	})

	return out, nil
}
