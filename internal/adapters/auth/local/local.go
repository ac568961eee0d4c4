// Package local es el proveedor de auth para desarrollo: cuentas en memoria,
// sin tokens reales. Emite los mismos textos de error que el proveedor
// hospedado para que la clasificación del dominio funcione igual en dev.
package local

import (
	"context"
	"errors"
	"strings"
	"sync"

	"livestock-records/internal/ports/auth"
)

var (
	errInvalidCredentials = errors.New("invalid login credentials")
	errAlreadyRegistered  = errors.New("user already registered")
)

type account struct {
	id       string
	password string
}

// Provider implementa auth.Authenticator y auth.Registrar.
type Provider struct {
	mu      sync.RWMutex
	byEmail map[string]account
	newID   func() string
}

func NewProvider(newID func() string) *Provider {
	return &Provider{
		byEmail: map[string]account{},
		newID:   newID,
	}
}

func (p *Provider) SignUp(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", errInvalidCredentials
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.byEmail[email]; exists {
		return "", errAlreadyRegistered
	}

	id := p.newID()
	p.byEmail[email] = account{id: id, password: password}
	return id, nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	email = normalizeEmail(email)

	p.mu.RLock()
	acc, exists := p.byEmail[email]
	p.mu.RUnlock()

	if !exists || acc.password != password {
		return auth.Session{}, errInvalidCredentials
	}

	// Sin tokens en dev: el middleware acepta X-Debug-User-ID.
	return auth.Session{
		UserID: acc.id,
		Email:  email,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
