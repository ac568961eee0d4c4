package farmers

import "context"

type Repository interface {
	Create(ctx context.Context, f Farmer) error
	GetByID(ctx context.Context, id string) (Farmer, error)
}
