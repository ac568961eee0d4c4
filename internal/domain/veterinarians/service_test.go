package veterinarians

import (
	"context"
	"errors"
	"testing"

	"livestock-records/internal/domain/farmers"
	"livestock-records/internal/domain/identity"
	"livestock-records/internal/domain/validation"
)

var errRepoNotFound = errors.New("repo: not found")

type testVetRepo struct {
	byID map[string]Veterinarian
}

func newTestVetRepo() *testVetRepo {
	return &testVetRepo{byID: map[string]Veterinarian{}}
}

func (r *testVetRepo) Create(ctx context.Context, v Veterinarian) error {
	r.byID[v.ID] = v
	return nil
}

func (r *testVetRepo) GetByID(ctx context.Context, id string) (Veterinarian, error) {
	v, ok := r.byID[id]
	if !ok {
		return Veterinarian{}, errRepoNotFound
	}
	return v, nil
}

func (r *testVetRepo) List(ctx context.Context) ([]Veterinarian, error) {
	out := make([]Veterinarian, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	return out, nil
}

type testAssignRepo struct {
	rows []Assignment
}

func (r *testAssignRepo) Create(ctx context.Context, a Assignment) error {
	r.rows = append(r.rows, a)
	return nil
}

func (r *testAssignRepo) ListFarmerIDsByVet(ctx context.Context, vetID string) ([]string, error) {
	out := make([]string, 0)
	for _, a := range r.rows {
		if a.VetID == vetID {
			out = append(out, a.FarmerID)
		}
	}
	return out, nil
}

func (r *testAssignRepo) Exists(ctx context.Context, vetID, farmerID string) (bool, error) {
	for _, a := range r.rows {
		if a.VetID == vetID && a.FarmerID == farmerID {
			return true, nil
		}
	}
	return false, nil
}

type testUserRepo struct {
	byID map[string]identity.User
}

func (r *testUserRepo) GetByID(ctx context.Context, id string) (identity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return identity.User{}, errRepoNotFound
	}
	return u, nil
}

func (r *testUserRepo) Save(ctx context.Context, u identity.User) error {
	if r.byID == nil {
		r.byID = map[string]identity.User{}
	}
	r.byID[u.ID] = u
	return nil
}

type testFarmerRepo struct {
	byID map[string]farmers.Farmer
}

func (r *testFarmerRepo) Create(ctx context.Context, f farmers.Farmer) error {
	if r.byID == nil {
		r.byID = map[string]farmers.Farmer{}
	}
	r.byID[f.ID] = f
	return nil
}

func (r *testFarmerRepo) GetByID(ctx context.Context, id string) (farmers.Farmer, error) {
	f, ok := r.byID[id]
	if !ok {
		return farmers.Farmer{}, errRepoNotFound
	}
	return f, nil
}

type testRegistrar struct {
	nextID string
	err    error
}

func (t *testRegistrar) SignUp(ctx context.Context, email, password string) (string, error) {
	if t.err != nil {
		return "", t.err
	}
	return t.nextID, nil
}

func newTestService(assignments *testAssignRepo) (*Service, *testVetRepo, *testUserRepo) {
	vets := newTestVetRepo()
	users := &testUserRepo{byID: map[string]identity.User{}}
	return NewService(vets, assignments, users, &testFarmerRepo{}, &testRegistrar{nextID: "vet-1"}), vets, users
}

func TestService_Assign_MissingVetID_NamesField(t *testing.T) {
	svc, _, _ := newTestService(&testAssignRepo{})

	_, err := svc.Assign(context.Background(), "", "farmer-1")
	var v *validation.Error
	if !errors.As(err, &v) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if v.Field != "veterinarian_id" {
		t.Fatalf("expected field veterinarian_id, got %q", v.Field)
	}
}

func TestService_Assign_MissingFarmerID_NamesField(t *testing.T) {
	svc, _, _ := newTestService(&testAssignRepo{})

	_, err := svc.Assign(context.Background(), "vet-1", "   ")
	var v *validation.Error
	if !errors.As(err, &v) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if v.Field != "farmer_id" {
		t.Fatalf("expected field farmer_id, got %q", v.Field)
	}
}

func TestService_Assign_CreatesExactlyOneRow(t *testing.T) {
	assignments := &testAssignRepo{}
	svc, _, _ := newTestService(assignments)

	a, err := svc.Assign(context.Background(), "vet-1", "farmer-1")
	if err != nil {
		t.Fatalf("Assign error: %v", err)
	}
	if a.ID == "" || a.VetID != "vet-1" || a.FarmerID != "farmer-1" {
		t.Fatalf("unexpected assignment %#v", a)
	}
	if len(assignments.rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(assignments.rows))
	}
}

func TestService_Assign_NoIdempotence_DuplicatesAllowed(t *testing.T) {
	// La unicidad es del storage, no de este layer: dos llamadas son dos filas.
	assignments := &testAssignRepo{}
	svc, _, _ := newTestService(assignments)

	if _, err := svc.Assign(context.Background(), "vet-1", "farmer-1"); err != nil {
		t.Fatalf("Assign #1 error: %v", err)
	}
	if _, err := svc.Assign(context.Background(), "vet-1", "farmer-1"); err != nil {
		t.Fatalf("Assign #2 error: %v", err)
	}
	if len(assignments.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(assignments.rows))
	}
}

func TestService_IsLinked(t *testing.T) {
	assignments := &testAssignRepo{}
	svc, _, _ := newTestService(assignments)

	_, _ = svc.Assign(context.Background(), "vet-1", "farmer-1")

	linked, err := svc.IsLinked(context.Background(), "vet-1", "farmer-1")
	if err != nil || !linked {
		t.Fatalf("expected linked, got linked=%v err=%v", linked, err)
	}
	linked, err = svc.IsLinked(context.Background(), "vet-1", "farmer-2")
	if err != nil || linked {
		t.Fatalf("expected not linked, got linked=%v err=%v", linked, err)
	}
}

func TestService_Directory_SortedByUserName(t *testing.T) {
	svc, vets, users := newTestService(&testAssignRepo{})

	_ = vets.Create(context.Background(), Veterinarian{ID: "v1", CRMV: "111"})
	_ = vets.Create(context.Background(), Veterinarian{ID: "v2", CRMV: "222"})
	_ = users.Save(context.Background(), identity.User{ID: "v1", Name: "Zilda", Email: "z@x.com", Role: identity.RoleVeterinarian})
	_ = users.Save(context.Background(), identity.User{ID: "v2", Name: "Ana", Email: "a@x.com", Role: identity.RoleVeterinarian})

	entries, err := svc.Directory(context.Background())
	if err != nil {
		t.Fatalf("Directory error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "Ana" || entries[1].Name != "Zilda" {
		t.Fatalf("expected name-ascending order, got %q then %q", entries[0].Name, entries[1].Name)
	}
	if entries[0].CRMV != "222" {
		t.Fatalf("expected enrichment to keep vet fields, got %#v", entries[0])
	}
}

func TestService_ListClients_EnrichesAndDedups(t *testing.T) {
	assignments := &testAssignRepo{}
	vets := newTestVetRepo()
	users := &testUserRepo{byID: map[string]identity.User{}}
	farmerRepo := &testFarmerRepo{}
	svc := NewService(vets, assignments, users, farmerRepo, &testRegistrar{nextID: "vet-1"})

	_ = farmerRepo.Create(context.Background(), farmers.Farmer{ID: "farmer-1", City: "Goiânia"})
	_ = users.Save(context.Background(), identity.User{ID: "farmer-1", Name: "João", Email: "joao@x.com", Role: identity.RoleFarmer})

	// Dos asignaciones duplicadas => un solo cliente.
	_, _ = svc.Assign(context.Background(), "vet-1", "farmer-1")
	_, _ = svc.Assign(context.Background(), "vet-1", "farmer-1")

	clients, err := svc.ListClients(context.Background(), "vet-1")
	if err != nil {
		t.Fatalf("ListClients error: %v", err)
	}
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
	c := clients[0]
	if c.FarmerID != "farmer-1" || c.City != "Goiânia" || c.Name != "João" || c.Email != "joao@x.com" {
		t.Fatalf("unexpected client %#v", c)
	}
}

func TestService_Register_ClassifiesDuplicateEmail(t *testing.T) {
	vets := newTestVetRepo()
	users := &testUserRepo{byID: map[string]identity.User{}}
	svc := NewService(vets, &testAssignRepo{}, users, &testFarmerRepo{}, &testRegistrar{
		err: errors.New("User already registered"),
	})

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Dra. Ana",
		Email:    "ana@x.com",
		Password: "secret",
		CRMV:     "GO-1234",
	})
	if !errors.Is(err, identity.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestService_Register_RequiresCRMV(t *testing.T) {
	svc, _, _ := newTestService(&testAssignRepo{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Dra. Ana",
		Email:    "ana@x.com",
		Password: "secret",
	})
	var v *validation.Error
	if !errors.As(err, &v) || v.Field != "crmv" {
		t.Fatalf("expected validation error naming crmv, got %v", err)
	}
}
