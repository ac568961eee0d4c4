package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error

	// Update persiste todos los campos editables. Nunca escribe FarmerID.
	Update(ctx context.Context, a Animal) error

	GetByID(ctx context.Context, id string) (Animal, error)

	// ListByFarmer devuelve los animales del fazendeiro, nombre ascendente.
	ListByFarmer(ctx context.Context, farmerID string) ([]Animal, error)
}
