package veterinarians

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"livestock-records/internal/domain/farmers"
	"livestock-records/internal/domain/identity"
	"livestock-records/internal/domain/validation"
	"livestock-records/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo        Repository
	assignments AssignmentRepository
	users       identity.Repository
	farmers     farmers.Repository
	registrar   auth.Registrar
	now         func() time.Time
}

func NewService(
	repo Repository,
	assignments AssignmentRepository,
	users identity.Repository,
	farmerRepo farmers.Repository,
	registrar auth.Registrar,
) *Service {
	return &Service{
		repo:        repo,
		assignments: assignments,
		users:       users,
		farmers:     farmerRepo,
		registrar:   registrar,
		now:         time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string

	CRMV  string
	Phone string

	Number       string
	Neighborhood string
	PostalCode   string
	City         string
	State        string
	Complement   *string
}

// Register sigue el mismo flujo en tres pasos que farmers.Register:
// cuenta de auth, upsert de users, insert del perfil — sin transacción.
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
	if strings.TrimSpace(in.CRMV) == "" {
		return identity.User{}, validation.Required("crmv")
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
		Role:  identity.RoleVeterinarian,
	}
	if err := s.users.Save(ctx, u); err != nil {
		return identity.User{}, err
	}

	var complement *string
	if in.Complement != nil {
		if v := strings.TrimSpace(*in.Complement); v != "" {
			complement = &v
		}
	}

	v := Veterinarian{
		ID:           userID,
		CRMV:         strings.TrimSpace(in.CRMV),
		Phone:        strings.TrimSpace(in.Phone),
		Number:       strings.TrimSpace(in.Number),
		Neighborhood: strings.TrimSpace(in.Neighborhood),
		PostalCode:   strings.TrimSpace(in.PostalCode),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		Complement:   complement,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return identity.User{}, err
	}

	return u, nil
}

// Directory lista todos los veterinarios enriquecidos con nombre/email del
// usuario, orden por nombre ascendente (el orden que espera la pantalla de
// selección).
func (s *Service) Directory(ctx context.Context) ([]DirectoryEntry, error) {
	vets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DirectoryEntry, 0, len(vets))
	for _, v := range vets {
		entry := DirectoryEntry{Veterinarian: v}
		// Tolera perfiles users faltantes (fila huérfana): entra sin nombre.
		if u, err := s.users.GetByID(ctx, v.ID); err == nil {
			entry.Name = u.Name
			entry.Email = u.Email
		}
		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Assign crea la vinculación veterinario→fazendeiro. Precondiciones: ambos
// ids presentes (ValidationError nombrando el campo faltante); el caller ya
// autenticado es responsabilidad del handler. Crea exactamente UNA fila por
// llamada — sin garantía de idempotencia en este layer.
func (s *Service) Assign(ctx context.Context, vetID, farmerID string) (Assignment, error) {
	vetID = strings.TrimSpace(vetID)
	farmerID = strings.TrimSpace(farmerID)

	if vetID == "" {
		return Assignment{}, validation.Required("veterinarian_id")
	}
	if farmerID == "" {
		return Assignment{}, validation.Required("farmer_id")
	}

	a := Assignment{
		ID:        uuid.NewString(),
		VetID:     vetID,
		FarmerID:  farmerID,
		CreatedAt: s.now(),
	}
	if err := s.assignments.Create(ctx, a); err != nil {
		return Assignment{}, err
	}
	return a, nil
}

// ListClients devuelve los fazendeiros vinculados al veterinario,
// enriquecidos con ciudad y nombre/email del usuario.
func (s *Service) ListClients(ctx context.Context, vetID string) ([]Client, error) {
	vetID = strings.TrimSpace(vetID)
	if vetID == "" {
		return nil, ErrInvalidInput
	}

	farmerIDs, err := s.assignments.ListFarmerIDsByVet(ctx, vetID)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]Client, 0, len(farmerIDs))
	for _, id := range farmerIDs {
		// Asignaciones duplicadas colapsan a un cliente.
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		c := Client{FarmerID: id}
		if f, err := s.farmers.GetByID(ctx, id); err == nil {
			c.City = f.City
		}
		if u, err := s.users.GetByID(ctx, id); err == nil {
			c.Name = u.Name
			c.Email = u.Email
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// IsLinked responde si existe al menos una vinculación vet→fazendeiro.
// Lo consumen animals/events/vaccines vía interfaz local.
func (s *Service) IsLinked(ctx context.Context, vetID, farmerID string) (bool, error) {
	vetID = strings.TrimSpace(vetID)
	farmerID = strings.TrimSpace(farmerID)
	if vetID == "" || farmerID == "" {
		return false, nil
	}
	return s.assignments.Exists(ctx, vetID, farmerID)
}
