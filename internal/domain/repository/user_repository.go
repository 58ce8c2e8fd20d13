package repository

import (
	"context"

	"github.com/plantnet/marketplace-api/internal/domain/entity"
)

// RoleProjection is the role/status slice of a user document, fetched on every
// authorization check.
type RoleProjection struct {
	Email  string
	Role   string
	Status string
}

// UserRepository persistence port for users (keyed by email).
type UserRepository interface {
	// Upsert inserts the user on first sight (role=customer, both timestamps
	// set) or refreshes name, image and last_logged_in on later calls.
	// Reports whether a new row was created.
	Upsert(ctx context.Context, user *entity.User) (created bool, err error)

	// GetByEmail returns nil, nil when the user does not exist.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetRole fetches only the role/status projection. nil, nil when absent.
	GetRole(ctx context.Context, email string) (*RoleProjection, error)

	// UpdateStatus sets only the status field. Reports whether a row matched.
	UpdateStatus(ctx context.Context, email, status string) (bool, error)

	// UpdateRole sets role and status in the same statement. Reports whether
	// a row matched.
	UpdateRole(ctx context.Context, email, role, status string) (bool, error)

	// List returns all users, newest first.
	List(ctx context.Context) ([]*entity.User, error)
}
