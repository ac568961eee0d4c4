// Package memory implementa los repositorios sobre mapas en memoria.
// Es el storage de dev/test; devuelve los MISMOS errores sentinela de
// dominio que el adapter de postgres para que errors.Is funcione igual
// con cualquiera de los dos.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"livestock-records/internal/domain/identity"
)

type usersRepo struct {
	mu   sync.RWMutex
	byID map[string]identity.User
}

func NewUsersRepo() identity.Repository {
	return &usersRepo{
		byID: make(map[string]identity.User),
	}
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (identity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return identity.User{}, identity.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) Save(ctx context.Context, u identity.User) error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[u.ID] = u
	return nil
}
