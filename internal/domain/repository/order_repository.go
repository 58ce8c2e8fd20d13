package repository

import (
	"context"

	"github.com/plantnet/marketplace-api/internal/domain/entity"
)

// OrderRepository persistence port for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error

	// ListByCustomer returns the buyer's orders, newest first.
	ListByCustomer(ctx context.Context, email string) ([]*entity.Order, error)

	// ListBySeller returns orders placed against the seller's listings,
	// newest first.
	ListBySeller(ctx context.Context, email string) ([]*entity.Order, error)
}
