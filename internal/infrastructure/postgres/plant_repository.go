package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plantnet/marketplace-api/internal/domain"
	"github.com/plantnet/marketplace-api/internal/domain/entity"
	"github.com/plantnet/marketplace-api/internal/domain/repository"
)

var _ repository.PlantRepository = (*PlantRepo)(nil)

// PlantRepo implements the PlantRepository port over PostgreSQL.
type PlantRepo struct {
	db DB
}

// NewPlantRepository builds the persistence adapter for plants.
func NewPlantRepository(db DB) *PlantRepo {
	return &PlantRepo{db: db}
}

// Create persists a new plant.
func (r *PlantRepo) Create(ctx context.Context, plant *entity.Plant) error {
	const query = `
		INSERT INTO plants (id, name, category, description, image, price, quantity,
			seller_email, seller_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		plant.ID, plant.Name, plant.Category, plant.Description, plant.Image,
		plant.Price, plant.Quantity, plant.SellerEmail, plant.SellerName,
		plant.CreatedAt, plant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plant: %w", err)
	}
	return nil
}

// GetByID fetches a plant by id. nil, nil when absent.
func (r *PlantRepo) GetByID(ctx context.Context, id string) (*entity.Plant, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate fetches and locks the row for the current transaction.
func (r *PlantRepo) GetForUpdate(ctx context.Context, id string) (*entity.Plant, error) {
	return r.get(ctx, id, " FOR UPDATE")
}

func (r *PlantRepo) get(ctx context.Context, id, suffix string) (*entity.Plant, error) {
	query := `
		SELECT id, name, category, description, image, price, quantity,
			seller_email, seller_name, created_at, updated_at
		FROM plants WHERE id = $1` + suffix
	var p entity.Plant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Description, &p.Image, &p.Price, &p.Quantity,
		&p.SellerEmail, &p.SellerName, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plant by id: %w", err)
	}
	return &p, nil
}

// List returns all plants, newest first.
func (r *PlantRepo) List(ctx context.Context) ([]*entity.Plant, error) {
	const query = `
		SELECT id, name, category, description, image, price, quantity,
			seller_email, seller_name, created_at, updated_at
		FROM plants ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plant
	for rows.Next() {
		var p entity.Plant
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Description, &p.Image, &p.Price,
			&p.Quantity, &p.SellerEmail, &p.SellerName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plant: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AdjustQuantity applies a signed delta in a single statement and returns the
// new counter. The counter is intentionally not clamped at zero.
func (r *PlantRepo) AdjustQuantity(ctx context.Context, id string, delta int) (int, error) {
	const query = `
		UPDATE plants SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1
		RETURNING quantity`
	var quantity int
	err := r.db.QueryRow(ctx, query, id, delta).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("adjust plant quantity: %w", err)
	}
	return quantity, nil
}
