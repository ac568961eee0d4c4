package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"livestock-records/internal/domain/veterinarians"
)

type vetsRepo struct {
	mu   sync.RWMutex
	byID map[string]veterinarians.Veterinarian
}

func NewVetsRepo() veterinarians.Repository {
	return &vetsRepo{
		byID: make(map[string]veterinarians.Veterinarian),
	}
}

func (r *vetsRepo) Create(ctx context.Context, v veterinarians.Veterinarian) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("veterinarian id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("veterinarian already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *vetsRepo) GetByID(ctx context.Context, id string) (veterinarians.Veterinarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return veterinarians.Veterinarian{}, veterinarians.ErrNotFound
	}
	return v, nil
}

func (r *vetsRepo) List(ctx context.Context) ([]veterinarians.Veterinarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]veterinarians.Veterinarian, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}

	// Orden estable por id; el orden por nombre lo aplica el service, que
	// es quien tiene los nombres.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

type assignmentsRepo struct {
	mu   sync.RWMutex
	rows []veterinarians.Assignment
}

func NewAssignmentsRepo() veterinarians.AssignmentRepository {
	return &assignmentsRepo{}
}

func (r *assignmentsRepo) Create(ctx context.Context, a veterinarians.Assignment) error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("assignment id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Sin constraint de unicidad: cada create es una fila nueva.
	r.rows = append(r.rows, a)
	return nil
}

func (r *assignmentsRepo) ListFarmerIDsByVet(ctx context.Context, vetID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for _, a := range r.rows {
		if a.VetID == vetID {
			out = append(out, a.FarmerID)
		}
	}
	return out, nil
}

func (r *assignmentsRepo) Exists(ctx context.Context, vetID, farmerID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.rows {
		if a.VetID == vetID && a.FarmerID == farmerID {
			return true, nil
		}
	}
	return false, nil
}
