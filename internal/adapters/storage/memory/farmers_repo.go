package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"livestock-records/internal/domain/farmers"
)

type farmersRepo struct {
	mu   sync.RWMutex
	byID map[string]farmers.Farmer
}

func NewFarmersRepo() farmers.Repository {
	return &farmersRepo{
		byID: make(map[string]farmers.Farmer),
	}
}

func (r *farmersRepo) Create(ctx context.Context, f farmers.Farmer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(f.ID) == "" {
		return errors.New("farmer id required")
	}
	if _, exists := r.byID[f.ID]; exists {
		return errors.New("farmer already exists")
	}
	r.byID[f.ID] = f
	return nil
}

func (r *farmersRepo) GetByID(ctx context.Context, id string) (farmers.Farmer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	if !ok {
		return farmers.Farmer{}, farmers.ErrNotFound
	}
	return f, nil
}
