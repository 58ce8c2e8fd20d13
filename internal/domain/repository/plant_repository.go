package repository

import (
	"context"

	"github.com/plantnet/marketplace-api/internal/domain/entity"
)

// PlantRepository persistence port for catalog listings.
type PlantRepository interface {
	Create(ctx context.Context, plant *entity.Plant) error

	// GetByID returns nil, nil when the plant does not exist.
	GetByID(ctx context.Context, id string) (*entity.Plant, error)

	// List returns all plants, newest first.
	List(ctx context.Context) ([]*entity.Plant, error)

	// AdjustQuantity applies a signed delta and returns the new quantity.
	// The counter is not clamped; it may go negative. Returns
	// domain.ErrNotFound when the plant does not exist.
	AdjustQuantity(ctx context.Context, id string, delta int) (int, error)

	// GetForUpdate locks the row for the current transaction. Only meaningful
	// on tx-bound repositories. nil, nil when absent.
	GetForUpdate(ctx context.Context, id string) (*entity.Plant, error)
}
