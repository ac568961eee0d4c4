package home

import (
	"context"
	"errors"
	"testing"

	"livestock-records/internal/domain/animals"
	"livestock-records/internal/domain/identity"
	"livestock-records/internal/domain/veterinarians"
)

type fixedRole struct {
	role identity.Role
	err  error
}

func (f fixedRole) RoleOf(ctx context.Context, userID string) (identity.Role, error) {
	return f.role, f.err
}

type spyAnimals struct {
	calls int
	items []animals.Animal
}

func (s *spyAnimals) ListByFarmer(ctx context.Context, farmerID string) ([]animals.Animal, error) {
	s.calls++
	return s.items, nil
}

type spyClients struct {
	calls int
	items []veterinarians.Client
}

func (s *spyClients) ListClients(ctx context.Context, vetID string) ([]veterinarians.Client, error) {
	s.calls++
	return s.items, nil
}

func TestService_Overview_FarmerNeverQueriesClients(t *testing.T) {
	herd := &spyAnimals{items: []animals.Animal{{ID: "a1", Name: "Mimosa"}}}
	clients := &spyClients{items: []veterinarians.Client{{FarmerID: "f1"}}}
	svc := NewService(fixedRole{role: identity.RoleFarmer}, herd, clients)

	ov, err := svc.Overview(context.Background(), "farmer-1")
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}

	if ov.Role != identity.RoleFarmer {
		t.Fatalf("expected farmer role, got %q", ov.Role)
	}
	if len(ov.Animals) != 1 || ov.Animals[0].ID != "a1" {
		t.Fatalf("expected herd in overview, got %#v", ov.Animals)
	}
	if len(ov.Clients) != 0 {
		t.Fatalf("expected no clients for farmer, got %#v", ov.Clients)
	}
	if clients.calls != 0 {
		t.Fatalf("farmer overview must not hit the client query, got %d calls", clients.calls)
	}
	if herd.calls != 1 {
		t.Fatalf("expected exactly 1 herd query, got %d", herd.calls)
	}
}

func TestService_Overview_VetNeverQueriesAnimals(t *testing.T) {
	herd := &spyAnimals{items: []animals.Animal{{ID: "a1"}}}
	clients := &spyClients{items: []veterinarians.Client{{FarmerID: "f1", Name: "João"}}}
	svc := NewService(fixedRole{role: identity.RoleVeterinarian}, herd, clients)

	ov, err := svc.Overview(context.Background(), "vet-1")
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}

	if ov.Role != identity.RoleVeterinarian {
		t.Fatalf("expected veterinarian role, got %q", ov.Role)
	}
	if len(ov.Clients) != 1 || ov.Clients[0].FarmerID != "f1" {
		t.Fatalf("expected clients in overview, got %#v", ov.Clients)
	}
	if len(ov.Animals) != 0 {
		t.Fatalf("expected no animals for vet, got %#v", ov.Animals)
	}
	if herd.calls != 0 {
		t.Fatalf("vet overview must not hit the herd query, got %d calls", herd.calls)
	}
}

func TestService_Overview_UnknownRoleFails(t *testing.T) {
	svc := NewService(fixedRole{role: identity.Role("admin")}, &spyAnimals{}, &spyClients{})

	_, err := svc.Overview(context.Background(), "user-1")
	if !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestService_Overview_PropagatesRoleLookupError(t *testing.T) {
	svc := NewService(fixedRole{err: identity.ErrNotFound}, &spyAnimals{}, &spyClients{})

	_, err := svc.Overview(context.Background(), "ghost")
	if !errors.Is(err, identity.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Overview_EmptyUserID(t *testing.T) {
	svc := NewService(fixedRole{role: identity.RoleFarmer}, &spyAnimals{}, &spyClients{})

	_, err := svc.Overview(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
