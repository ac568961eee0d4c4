package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"livestock-records/internal/domain/events"
)

type eventsRepo struct {
	mu   sync.RWMutex
	byID map[string]events.AnimalEvent
}

func NewEventsRepo() events.Repository {
	return &eventsRepo{
		byID: make(map[string]events.AnimalEvent),
	}
}

func (r *eventsRepo) Create(ctx context.Context, e events.AnimalEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *eventsRepo) GetByID(ctx context.Context, id string) (events.AnimalEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return events.AnimalEvent{}, events.ErrNotFound
	}
	return e, nil
}

func (r *eventsRepo) ListByAnimal(ctx context.Context, animalID string) ([]events.AnimalEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.AnimalEvent, 0)
	for _, e := range r.byID {
		if e.AnimalID == animalID {
			out = append(out, e)
		}
	}

	// Fecha descendente, desempate por created_at para orden estable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].EventDate.Equal(out[j].EventDate) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].EventDate.After(out[j].EventDate)
	})

	return out, nil
}

func (r *eventsRepo) Update(ctx context.Context, e events.AnimalEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[e.ID]; !exists {
		return events.ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *eventsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		// Borrar algo que no existe es NotFound, no un no-op.
		return events.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
