package postgres

import (
	"context"
	"database/sql"
	"strings"

	"livestock-records/internal/domain/vaccines"
)

type VaccinesRepo struct {
	db *sql.DB
}

func NewVaccinesRepo(db *sql.DB) *VaccinesRepo {
	return &VaccinesRepo{db: db}
}

func (r *VaccinesRepo) Create(ctx context.Context, v vaccines.Vaccine) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaccines (
			id, animal_id, name, applied_at, validity_days, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		v.ID,
		v.AnimalID,
		v.Name,
		v.AppliedAt,
		toNullInt(v.ValidityDays),
		v.CreatedAt,
	)
	return err
}

func (r *VaccinesRepo) ListByAnimal(ctx context.Context, animalID string) ([]vaccines.Vaccine, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_id, name, applied_at, validity_days, created_at
		FROM vaccines
		WHERE animal_id = $1
		ORDER BY applied_at DESC, created_at DESC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccines.Vaccine, 0)
	for rows.Next() {
		var v vaccines.Vaccine
		var validity sql.NullInt64
		if err := rows.Scan(
			&v.ID,
			&v.AnimalID,
			&v.Name,
			&v.AppliedAt,
			&validity,
			&v.CreatedAt,
		); err != nil {
			return nil, err
		}
		v.ValidityDays = fromNullInt(validity)
		out = append(out, v)
	}

	return out, rows.Err()
}
