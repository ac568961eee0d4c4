package postgres

import (
	"context"
	"database/sql"
	"strings"

	"livestock-records/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Create(ctx context.Context, e events.AnimalEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animal_events (
			id, animal_id, type, event_date, description, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		e.ID,
		e.AnimalID,
		e.Type,
		e.EventDate,
		e.Description,
		e.CreatedAt,
	)
	return err
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.AnimalEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.AnimalEvent{}, events.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, animal_id, type, event_date, description, created_at
		FROM animal_events
		WHERE id = $1
	`, id)

	var e events.AnimalEvent
	if err := row.Scan(
		&e.ID,
		&e.AnimalID,
		&e.Type,
		&e.EventDate,
		&e.Description,
		&e.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return events.AnimalEvent{}, events.ErrNotFound
		}
		return events.AnimalEvent{}, err
	}
	return e, nil
}

func (r *EventsRepo) ListByAnimal(ctx context.Context, animalID string) ([]events.AnimalEvent, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_id, type, event_date, description, created_at
		FROM animal_events
		WHERE animal_id = $1
		ORDER BY event_date DESC, created_at DESC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.AnimalEvent, 0)
	for rows.Next() {
		var e events.AnimalEvent
		if err := rows.Scan(
			&e.ID,
			&e.AnimalID,
			&e.Type,
			&e.EventDate,
			&e.Description,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *EventsRepo) Update(ctx context.Context, e events.AnimalEvent) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animal_events
		SET type = $2, event_date = $3, description = $4
		WHERE id = $1
	`,
		e.ID,
		e.Type,
		e.EventDate,
		e.Description,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}

// Delete reporta NotFound cuando el DELETE no afectó filas; el handler lo
// traduce a 404.
func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM animal_events
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}
