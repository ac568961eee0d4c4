package identity

import (
	"context"
	"strings"

	"livestock-records/internal/ports/auth"
)

type Service struct {
	repo Repository
	auth auth.Authenticator
}

func NewService(repo Repository, authenticator auth.Authenticator) *Service {
	return &Service{
		repo: repo,
		auth: authenticator,
	}
}

// Login autentica contra el proveedor hospedado y reclasifica los errores
// conocidos. No reintenta: un fallo tumba la acción completa.
func (s *Service) Login(ctx context.Context, email, password string) (auth.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return auth.Session{}, ErrInvalidInput
	}
	if password == "" {
		return auth.Session{}, ErrInvalidInput
	}

	sess, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return auth.Session{}, ClassifyAuthError(err)
	}
	return sess, nil
}

// Profile devuelve la fila users del caller (id, nombre, email, rol).
func (s *Service) Profile(ctx context.Context, userID string) (User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, userID)
}

// RoleOf expone solo el rol, para el dispatch condicional en domain/home.
func (s *Service) RoleOf(ctx context.Context, userID string) (Role, error) {
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}
