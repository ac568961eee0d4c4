package identity

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (User, error)

	// Save hace upsert por id: el proveedor de auth puede haber creado la
	// fila (trigger de signup) antes de que completemos nombre/rol.
	Save(ctx context.Context, u User) error
}
