package auth

import (
	"context"

	"github.com/plantnet/marketplace-api/internal/application/dto"
	"github.com/plantnet/marketplace-api/internal/domain"
	"github.com/plantnet/marketplace-api/internal/domain/entity"
	"github.com/plantnet/marketplace-api/internal/domain/repository"
	"github.com/plantnet/marketplace-api/pkg/jwt"
)

// JWTConfig token issuance settings.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// AuthUseCase token issuance, role resolution and the role workflow
// (customer -> requested -> seller/admin).
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// IssueToken signs a credential for the given identity payload. The token is
// stateless: logout only clears the client cookie, nothing is revoked here.
func (uc *AuthUseCase) IssueToken(in dto.TokenRequest) (*dto.TokenResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

// RoleOf resolves the stored role for an email. Empty string when the user
// does not exist. Re-queries the store on every call; no caching.
func (uc *AuthUseCase) RoleOf(ctx context.Context, email string) (string, error) {
	p, err := uc.userRepo.GetRole(ctx, email)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", nil
	}
	return p.Role, nil
}

// GetRole returns the role/status projection. nil when absent.
func (uc *AuthUseCase) GetRole(ctx context.Context, email string) (*dto.RoleResponse, error) {
	p, err := uc.userRepo.GetRole(ctx, email)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &dto.RoleResponse{Email: p.Email, Role: p.Role, Status: p.Status}, nil
}

// RequestSeller moves a customer to the "requested" status (the seller
// application). Sellers and admins have nothing to request: ErrConflict.
func (uc *AuthUseCase) RequestSeller(ctx context.Context, email string) error {
	p, err := uc.userRepo.GetRole(ctx, email)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrUserNotFound
	}
	if p.Role != entity.RoleCustomer {
		return domain.ErrConflict
	}
	matched, err := uc.userRepo.UpdateStatus(ctx, email, entity.StatusRequested)
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrUserNotFound
	}
	return nil
}

// GrantRole sets role and status=verified in one update (admin action).
// Idempotent: granting the same role twice yields the same final state.
// There is no demotion guard other than role validation; concurrent grants
// are last-write-wins on the single user row.
func (uc *AuthUseCase) GrantRole(ctx context.Context, email, role string) (*dto.RoleResponse, error) {
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	matched, err := uc.userRepo.UpdateRole(ctx, email, role, entity.StatusVerified)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrUserNotFound
	}
	return &dto.RoleResponse{Email: email, Role: role, Status: entity.StatusVerified}, nil
}
