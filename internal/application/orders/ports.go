package orders

import (
	"context"

	"github.com/plantnet/marketplace-api/internal/domain/repository"
)

// TxRunner executes a function inside a transaction with repositories bound
// to it. The order insert and the plant quantity decrement are two writes;
// the runner makes them commit or roll back as one.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		plantRepo repository.PlantRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
