package postgres

import (
	"context"
	"database/sql"
	"strings"

	"livestock-records/internal/domain/farmers"
)

type FarmersRepo struct {
	db *sql.DB
}

func NewFarmersRepo(db *sql.DB) *FarmersRepo {
	return &FarmersRepo{db: db}
}

func (r *FarmersRepo) Create(ctx context.Context, f farmers.Farmer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO farmers (
			id, neighborhood, postal_code, city, state, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		f.ID,
		f.Neighborhood,
		f.PostalCode,
		f.City,
		f.State,
		f.CreatedAt,
	)
	return err
}

func (r *FarmersRepo) GetByID(ctx context.Context, id string) (farmers.Farmer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return farmers.Farmer{}, farmers.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, neighborhood, postal_code, city, state, created_at
		FROM farmers
		WHERE id = $1
	`, id)

	var f farmers.Farmer
	if err := row.Scan(
		&f.ID,
		&f.Neighborhood,
		&f.PostalCode,
		&f.City,
		&f.State,
		&f.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return farmers.Farmer{}, farmers.ErrNotFound
		}
		return farmers.Farmer{}, err
	}
	return f, nil
}
