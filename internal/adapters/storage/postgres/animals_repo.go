package postgres

import (
	"context"
	"database/sql"
	"strings"

	"livestock-records/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (
			id, farmer_id,
			name, breed, sex, birth_date,
			sire_name, sire_registry, sire_breed,
			dam_name, dam_registry, dam_breed,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		a.ID,
		a.FarmerID,
		a.Name,
		a.Breed,
		a.Sex,
		toNullDate(a.BirthDate),
		toNullString(a.SireName),
		toNullString(a.SireRegistry),
		toNullString(a.SireBreed),
		toNullString(a.DamName),
		toNullString(a.DamRegistry),
		toNullString(a.DamBreed),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

// Update escribe los campos editables. farmer_id queda fuera del SET a
// propósito: el dueño no cambia nunca después del create.
func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			name = $2,
			breed = $3,
			sex = $4,
			birth_date = $5,
			sire_name = $6,
			sire_registry = $7,
			sire_breed = $8,
			dam_name = $9,
			dam_registry = $10,
			dam_breed = $11,
			updated_at = $12
		WHERE id = $1
	`,
		a.ID,
		a.Name,
		a.Breed,
		a.Sex,
		toNullDate(a.BirthDate),
		toNullString(a.SireName),
		toNullString(a.SireRegistry),
		toNullString(a.SireBreed),
		toNullString(a.DamName),
		toNullString(a.DamRegistry),
		toNullString(a.DamBreed),
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, farmer_id,
			name, breed, sex, birth_date,
			sire_name, sire_registry, sire_breed,
			dam_name, dam_registry, dam_breed,
			created_at, updated_at
		FROM animals
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) ListByFarmer(ctx context.Context, farmerID string) ([]animals.Animal, error) {
	farmerID = strings.TrimSpace(farmerID)
	if farmerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, farmer_id,
			name, breed, sex, birth_date,
			sire_name, sire_registry, sire_breed,
			dam_name, dam_registry, dam_breed,
			created_at, updated_at
		FROM animals
		WHERE farmer_id = $1
		ORDER BY name ASC, id ASC
	`, farmerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func scanAnimal(scan func(dest ...any) error) (animals.Animal, error) {
	var a animals.Animal
	var bd sql.NullTime
	var sireName, sireRegistry, sireBreed sql.NullString
	var damName, damRegistry, damBreed sql.NullString

	if err := scan(
		&a.ID,
		&a.FarmerID,
		&a.Name,
		&a.Breed,
		&a.Sex,
		&bd,
		&sireName,
		&sireRegistry,
		&sireBreed,
		&damName,
		&damRegistry,
		&damBreed,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}

	a.BirthDate = fromNullDate(bd)
	a.SireName = fromNullString(sireName)
	a.SireRegistry = fromNullString(sireRegistry)
	a.SireBreed = fromNullString(sireBreed)
	a.DamName = fromNullString(damName)
	a.DamRegistry = fromNullString(damRegistry)
	a.DamBreed = fromNullString(damBreed)

	return a, nil
}
