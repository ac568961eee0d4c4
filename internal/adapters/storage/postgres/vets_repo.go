package postgres

import (
	"context"
	"database/sql"
	"strings"

	"livestock-records/internal/domain/veterinarians"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

func (r *VetsRepo) Create(ctx context.Context, v veterinarians.Veterinarian) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO veterinarians (
			id, crmv, phone,
			number, neighborhood, postal_code, city, state, complement,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		v.ID,
		v.CRMV,
		v.Phone,
		v.Number,
		v.Neighborhood,
		v.PostalCode,
		v.City,
		v.State,
		toNullString(v.Complement),
		v.CreatedAt,
	)
	return err
}

func (r *VetsRepo) GetByID(ctx context.Context, id string) (veterinarians.Veterinarian, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return veterinarians.Veterinarian{}, veterinarians.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, crmv, phone,
			number, neighborhood, postal_code, city, state, complement,
			created_at
		FROM veterinarians
		WHERE id = $1
	`, id)

	v, err := scanVet(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return veterinarians.Veterinarian{}, veterinarians.ErrNotFound
		}
		return veterinarians.Veterinarian{}, err
	}
	return v, nil
}

func (r *VetsRepo) List(ctx context.Context) ([]veterinarians.Veterinarian, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, crmv, phone,
			number, neighborhood, postal_code, city, state, complement,
			created_at
		FROM veterinarians
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]veterinarians.Veterinarian, 0)
	for rows.Next() {
		v, err := scanVet(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}

func scanVet(scan func(dest ...any) error) (veterinarians.Veterinarian, error) {
	var v veterinarians.Veterinarian
	var complement sql.NullString

	if err := scan(
		&v.ID,
		&v.CRMV,
		&v.Phone,
		&v.Number,
		&v.Neighborhood,
		&v.PostalCode,
		&v.City,
		&v.State,
		&complement,
		&v.CreatedAt,
	); err != nil {
		return veterinarians.Veterinarian{}, err
	}

	v.Complement = fromNullString(complement)
	return v, nil
}

type AssignmentsRepo struct {
	db *sql.DB
}

func NewAssignmentsRepo(db *sql.DB) *AssignmentsRepo {
	return &AssignmentsRepo{db: db}
}

func (r *AssignmentsRepo) Create(ctx context.Context, a veterinarians.Assignment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vet_assignments (id, vet_id, farmer_id, created_at)
		VALUES ($1,$2,$3,$4)
	`,
		a.ID,
		a.VetID,
		a.FarmerID,
		a.CreatedAt,
	)
	return err
}

func (r *AssignmentsRepo) ListFarmerIDsByVet(ctx context.Context, vetID string) ([]string, error) {
	vetID = strings.TrimSpace(vetID)
	if vetID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT farmer_id
		FROM vet_assignments
		WHERE vet_id = $1
		ORDER BY created_at ASC
	`, vetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}

	return out, rows.Err()
}

func (r *AssignmentsRepo) Exists(ctx context.Context, vetID, farmerID string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM vet_assignments
			WHERE vet_id = $1 AND farmer_id = $2
		)
	`, vetID, farmerID)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
