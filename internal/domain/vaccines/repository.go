package vaccines

import "context"

type Repository interface {
	Create(ctx context.Context, v Vaccine) error

	// ListByAnimal devuelve las vacunas del animal, aplicación descendente.
	ListByAnimal(ctx context.Context, animalID string) ([]Vaccine, error)
}
