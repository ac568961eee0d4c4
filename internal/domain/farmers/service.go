package farmers

import (
	"context"
	"errors"
	"strings"
	"time"

	"livestock-records/internal/domain/identity"
	"livestock-records/internal/domain/validation"
	"livestock-records/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo      Repository
	users     identity.Repository
	registrar auth.Registrar
	now       func() time.Time
}

func NewService(repo Repository, users identity.Repository, registrar auth.Registrar) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		registrar: registrar,
		now:       time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string

	Neighborhood string
	PostalCode   string
	City         string
	State        string
}

// Register da de alta un fazendeiro en tres pasos, en secuencia y sin
// transacción: cuenta en el proveedor de
// auth, upsert del perfil users, insert en farmers. Un fallo aborta los
// pasos siguientes pero no deshace los anteriores.
func (s *Service) Register(ctx context.Context, in RegisterInput) (identity.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return identity.User{}, validation.Required("name")
	}
	if strings.TrimSpace(in.Email) == "" {
		return identity.User{}, validation.Required("email")
	}
	if in.Password == "" {
		return identity.User{}, validation.Required("password")
	}

	userID, err := s.registrar.SignUp(ctx, strings.TrimSpace(in.Email), in.Password)
	if err != nil {
		return identity.User{}, identity.ClassifyAuthError(err)
	}
	if strings.TrimSpace(userID) == "" {
		return identity.User{}, errors.New("auth provider returned no user id")
	}

	u := identity.User{
		ID:    userID,
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Role:  identity.RoleFarmer,
	}
	if err := s.users.Save(ctx, u); err != nil {
		return identity.User{}, err
	}

	f := Farmer{
		ID:           userID,
		Neighborhood: strings.TrimSpace(in.Neighborhood),
		PostalCode:   strings.TrimSpace(in.PostalCode),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return identity.User{}, err
	}

	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Farmer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Farmer{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}
