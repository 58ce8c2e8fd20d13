package usecase

import (
	"context"
	"time"

	"github.com/plantnet/marketplace-api/internal/application/dto"
	"github.com/plantnet/marketplace-api/internal/domain"
	"github.com/plantnet/marketplace-api/internal/domain/entity"
	"github.com/plantnet/marketplace-api/internal/domain/repository"
)

// UserUseCase profile upsert and admin listing.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Upsert saves the user on login. First sight inserts with role=customer,
// status=none and both timestamps equal; later calls only refresh the profile
// fields and last_logged_in.
func (uc *UserUseCase) Upsert(ctx context.Context, email string, in dto.UpsertUserRequest) (*dto.UpsertUserResponse, error) {
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	user := &entity.User{
		Email:        email,
		Name:         in.Name,
		Image:        in.Image,
		Role:         entity.RoleCustomer,
		Status:       entity.StatusNone,
		CreatedAt:    now,
		LastLoggedIn: now,
	}
	created, err := uc.repo.Upsert(ctx, user)
	if err != nil {
		return nil, err
	}
	// Re-read: on a refresh the stored role, status and created_at differ
	// from the candidate row above.
	stored, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.UpsertUserResponse{User: *toUserResponse(stored), Created: created}, nil
}

// List returns all users (admin view).
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Email:        u.Email,
		Name:         u.Name,
		Image:        u.Image,
		Role:         u.Role,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		LastLoggedIn: u.LastLoggedIn,
	}
}
