package events

import "context"

type Repository interface {
	Create(ctx context.Context, e AnimalEvent) error
	GetByID(ctx context.Context, id string) (AnimalEvent, error)

	// ListByAnimal devuelve los eventos del animal, fecha descendente.
	ListByAnimal(ctx context.Context, animalID string) ([]AnimalEvent, error)

	Update(ctx context.Context, e AnimalEvent) error

	// Delete borra el evento; cero filas afectadas => ErrNotFound del adapter.
	Delete(ctx context.Context, id string) error
}
