package postgres

import (
	"context"
	"database/sql"

	"livestock-records/internal/domain/identity"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (identity.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, role
		FROM users
		WHERE id = $1
	`, id)

	var u identity.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role); err != nil {
		if err == sql.ErrNoRows {
			return identity.User{}, identity.ErrNotFound
		}
		return identity.User{}, err
	}
	return u, nil
}

// Save hace upsert por id: el trigger de signup del proveedor de auth puede
// haber insertado la fila antes que nosotros.
func (r *UsersRepo) Save(ctx context.Context, u identity.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    role = EXCLUDED.role
	`,
		u.ID,
		u.Name,
		u.Email,
		u.Role,
	)
	return err
}
