package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]AnimalEvent
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]AnimalEvent{}}
}

func (r *testRepo) Create(ctx context.Context, e AnimalEvent) error {
	if e.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (AnimalEvent, error) {
	e, ok := r.byID[id]
	if !ok {
		return AnimalEvent{}, errRepoNotFound
	}
	return e, nil
}

func (r *testRepo) ListByAnimal(ctx context.Context, animalID string) ([]AnimalEvent, error) {
	out := make([]AnimalEvent, 0)
	for _, e := range r.byID {
		if e.AnimalID == animalID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, e AnimalEvent) error {
	if _, ok := r.byID[e.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

type recordedVaccine struct {
	animalID  string
	name      string
	appliedAt time.Time
	expiresAt *time.Time
}

type testRecorder struct {
	calls []recordedVaccine
	err   error
}

func (t *testRecorder) RecordVaccine(ctx context.Context, animalID, name string, appliedAt time.Time, expiresAt *time.Time) error {
	if t.err != nil {
		return t.err
	}
	t.calls = append(t.calls, recordedVaccine{animalID, name, appliedAt, expiresAt})
	return nil
}

func eventDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestService_Record_VaccinationWritesVaccine(t *testing.T) {
	repo := newTestRepo()
	rec := &testRecorder{}
	svc := NewService(repo, rec)

	expiry := eventDate("2024-07-01")
	e, err := svc.Record(context.Background(), "animal-1", CreateInput{
		Type:        EventTypeVaccination,
		EventDate:   eventDate("2024-01-01"),
		Description: "aftosa anual",
	}, &VaccineInput{Name: "Aftosa", ExpiresAt: &expiry})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if e.Type != EventTypeVaccination {
		t.Fatalf("unexpected type %s", e.Type)
	}

	if len(rec.calls) != 1 {
		t.Fatalf("expected 1 vaccine write, got %d", len(rec.calls))
	}
	call := rec.calls[0]
	if call.animalID != "animal-1" || call.name != "Aftosa" {
		t.Fatalf("unexpected vaccine call %#v", call)
	}
	if !call.appliedAt.Equal(e.EventDate) {
		t.Fatalf("vaccine applied_at should be the event date")
	}
}

func TestService_Record_NonVaccination_NeverWritesVaccine(t *testing.T) {
	rec := &testRecorder{}
	svc := NewService(newTestRepo(), rec)

	// Aunque venga payload de vacuna, un evento no-VACCINATION no la escribe.
	_, err := svc.Record(context.Background(), "animal-1", CreateInput{
		Type:      EventTypeBirth,
		EventDate: eventDate("2024-03-10"),
	}, &VaccineInput{Name: "Aftosa"})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no vaccine writes, got %d", len(rec.calls))
	}
}

func TestService_Record_VaccinationWithoutName_SkipsVaccine(t *testing.T) {
	rec := &testRecorder{}
	svc := NewService(newTestRepo(), rec)

	_, err := svc.Record(context.Background(), "animal-1", CreateInput{
		Type:      EventTypeVaccination,
		EventDate: eventDate("2024-03-10"),
	}, &VaccineInput{Name: "   "})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no vaccine writes, got %d", len(rec.calls))
	}
}

func TestService_Record_SecondWriteFailure_KeepsEvent(t *testing.T) {
	// Sin transacción: si falla el write de vacuna, el evento ya quedó
	// persistido y el error se propaga igual.
	repo := newTestRepo()
	rec := &testRecorder{err: errors.New("vaccine insert failed")}
	svc := NewService(repo, rec)

	_, err := svc.Record(context.Background(), "animal-1", CreateInput{
		Type:      EventTypeVaccination,
		EventDate: eventDate("2024-01-01"),
	}, &VaccineInput{Name: "Brucelose"})
	if err == nil {
		t.Fatalf("expected error from vaccine write")
	}

	if len(repo.byID) != 1 {
		t.Fatalf("expected event row to survive the failed vaccine write, got %d rows", len(repo.byID))
	}
}

func TestService_Record_RejectsUnknownType(t *testing.T) {
	svc := NewService(newTestRepo(), &testRecorder{})

	_, err := svc.Record(context.Background(), "animal-1", CreateInput{
		Type:      EventType("WEIGHING"),
		EventDate: eventDate("2024-01-01"),
	}, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_PatchesOnlyProvidedFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testRecorder{})

	created, err := svc.Record(context.Background(), "animal-1", CreateInput{
		Type:        EventTypeInsemination,
		EventDate:   eventDate("2024-05-05"),
		Description: "primeira tentativa",
	}, nil)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}

	desc := "confirmada"
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Description: &desc})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Description != "confirmada" {
		t.Fatalf("description not patched: %q", updated.Description)
	}
	if updated.Type != EventTypeInsemination || !updated.EventDate.Equal(created.EventDate) {
		t.Fatalf("untouched fields changed: %#v", updated)
	}
}

func TestService_Delete_MissingRow_IsNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testRecorder{})

	err := svc.Delete(context.Background(), "does-not-exist")
	if err == nil {
		t.Fatalf("expected error deleting missing event")
	}
}
