package veterinarians

import "context"

type Repository interface {
	Create(ctx context.Context, v Veterinarian) error
	GetByID(ctx context.Context, id string) (Veterinarian, error)
	List(ctx context.Context) ([]Veterinarian, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) error

	// ListFarmerIDsByVet devuelve los fazendeiros vinculados al veterinario.
	ListFarmerIDsByVet(ctx context.Context, vetID string) ([]string, error)

	Exists(ctx context.Context, vetID, farmerID string) (bool, error)
}
