package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plantnet/marketplace-api/internal/domain/entity"
	"github.com/plantnet/marketplace-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements the UserRepository port over PostgreSQL.
type UserRepo struct {
	db DB
}

// NewUserRepository builds the persistence adapter for users.
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

// Upsert inserts the user with role=customer on first sight; on conflict it
// refreshes only the mutable profile fields and last_logged_in, leaving role,
// status and created_at untouched.
func (r *UserRepo) Upsert(ctx context.Context, user *entity.User) (bool, error) {
	const query = `
		INSERT INTO users (email, name, image, role, status, created_at, last_logged_in)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email) DO UPDATE SET
			name           = EXCLUDED.name,
			image          = EXCLUDED.image,
			last_logged_in = EXCLUDED.last_logged_in
		RETURNING (xmax = 0)`
	var created bool
	err := r.db.QueryRow(ctx, query,
		user.Email, user.Name, user.Image, user.Role, user.Status,
		user.CreatedAt, user.LastLoggedIn,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("upsert user: %w", err)
	}
	return created, nil
}

// GetByEmail fetches a user by email. nil, nil when absent.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
		SELECT email, name, image, role, status, created_at, last_logged_in
		FROM users WHERE email = $1`
	var u entity.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.Email, &u.Name, &u.Image, &u.Role, &u.Status, &u.CreatedAt, &u.LastLoggedIn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// GetRole fetches only the role/status projection. nil, nil when absent.
func (r *UserRepo) GetRole(ctx context.Context, email string) (*repository.RoleProjection, error) {
	const query = `SELECT email, role, status FROM users WHERE email = $1`
	var p repository.RoleProjection
	err := r.db.QueryRow(ctx, query, email).Scan(&p.Email, &p.Role, &p.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user role: %w", err)
	}
	return &p, nil
}

// UpdateStatus sets only the status field.
func (r *UserRepo) UpdateStatus(ctx context.Context, email, status string) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE users SET status = $2 WHERE email = $1`, email, status)
	if err != nil {
		return false, fmt.Errorf("update user status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateRole sets role and status in the same statement, so a grant is a
// single atomic document update.
func (r *UserRepo) UpdateRole(ctx context.Context, email, role, status string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET role = $2, status = $3 WHERE email = $1`, email, role, status)
	if err != nil {
		return false, fmt.Errorf("update user role: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List returns all users, newest first.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	const query = `
		SELECT email, name, image, role, status, created_at, last_logged_in
		FROM users ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.Email, &u.Name, &u.Image, &u.Role, &u.Status, &u.CreatedAt, &u.LastLoggedIn); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
