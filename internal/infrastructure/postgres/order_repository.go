package postgres

import (
	"context"
	"fmt"

	"github.com/plantnet/marketplace-api/internal/domain/entity"
	"github.com/plantnet/marketplace-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements the OrderRepository port over PostgreSQL.
type OrderRepo struct {
	db DB
}

// NewOrderRepository builds the persistence adapter for orders.
func NewOrderRepository(db DB) *OrderRepo {
	return &OrderRepo{db: db}
}

const orderColumns = `id, plant_id, plant_name, plant_image, price, quantity,
	customer_email, customer_name, seller_email, address, status, created_at`

// Create persists a new order.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	const query = `
		INSERT INTO orders (id, plant_id, plant_name, plant_image, price, quantity,
			customer_email, customer_name, seller_email, address, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		order.ID, order.PlantID, order.PlantName, order.PlantImage, order.Price,
		order.Quantity, order.CustomerEmail, order.CustomerName, order.SellerEmail,
		order.Address, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListByCustomer returns the buyer's orders, newest first.
func (r *OrderRepo) ListByCustomer(ctx context.Context, email string) ([]*entity.Order, error) {
	return r.list(ctx, "customer_email", email)
}

// ListBySeller returns orders placed against the seller's listings, newest first.
func (r *OrderRepo) ListBySeller(ctx context.Context, email string) ([]*entity.Order, error) {
	return r.list(ctx, "seller_email", email)
}

func (r *OrderRepo) list(ctx context.Context, column, email string) ([]*entity.Order, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM orders WHERE %s = $1 ORDER BY created_at DESC`, orderColumns, column)
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list orders by %s: %w", column, err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.PlantID, &o.PlantName, &o.PlantImage, &o.Price,
			&o.Quantity, &o.CustomerEmail, &o.CustomerName, &o.SellerEmail,
			&o.Address, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
