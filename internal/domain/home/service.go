package home

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"livestock-records/internal/domain/animals"
	"livestock-records/internal/domain/identity"
	"livestock-records/internal/domain/veterinarians"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownRole sale cuando la fila users trae un rol que este
	// servicio no sabe despachar. Mejor fallar explícito que devolver
	// la lista equivocada.
	ErrUnknownRole = errors.New("unknown role")
)

// RoleResolver resuelve el rol del caller. Lo implementa identity.Service.
type RoleResolver interface {
	RoleOf(ctx context.Context, userID string) (identity.Role, error)
}

// AnimalLister es la rama del fazendeiro. Lo implementa animals.Service.
type AnimalLister interface {
	ListByFarmer(ctx context.Context, farmerID string) ([]animals.Animal, error)
}

// ClientLister es la rama del veterinario. Lo implementa veterinarians.Service.
type ClientLister interface {
	ListClients(ctx context.Context, vetID string) ([]veterinarians.Client, error)
}

// Overview es la pantalla inicial: exactamente UNA de las dos listas viene
// poblada según el rol.
type Overview struct {
	Role    identity.Role
	Animals []animals.Animal
	Clients []veterinarians.Client
}

// Service concentra el único punto de dispatch por rol de toda la app.
// Cualquier otra pantalla que necesite comportamiento condicional por rol
// debe pasar por acá, no duplicar el switch.
type Service struct {
	roles   RoleResolver
	animals AnimalLister
	clients ClientLister
}

func NewService(roles RoleResolver, animalLister AnimalLister, clientLister ClientLister) *Service {
	return &Service{
		roles:   roles,
		animals: animalLister,
		clients: clientLister,
	}
}

// Overview consulta SOLO la rama del rol del caller: un fazendeiro nunca
// dispara la query de clientes y un veterinario nunca la de animales.
func (s *Service) Overview(ctx context.Context, userID string) (Overview, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Overview{}, ErrInvalidInput
	}

	role, err := s.roles.RoleOf(ctx, userID)
	if err != nil {
		return Overview{}, err
	}

	switch role {
	case identity.RoleFarmer:
		herd, err := s.animals.ListByFarmer(ctx, userID)
		if err != nil {
			return Overview{}, err
		}
		return Overview{Role: role, Animals: herd}, nil

	case identity.RoleVeterinarian:
		clients, err := s.clients.ListClients(ctx, userID)
		if err != nil {
			return Overview{}, err
		}
		return Overview{Role: role, Clients: clients}, nil

	default:
		return Overview{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}
