package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/plantnet/marketplace-api/internal/application/dto"
	"github.com/plantnet/marketplace-api/internal/domain"
	"github.com/plantnet/marketplace-api/internal/domain/entity"
	"github.com/plantnet/marketplace-api/internal/domain/repository"
)

// PlantUseCase catalog CRUD plus the signed quantity adjustment.
type PlantUseCase struct {
	repo repository.PlantRepository
}

// NewPlantUseCase builds the use case.
func NewPlantUseCase(repo repository.PlantRepository) *PlantUseCase {
	return &PlantUseCase{repo: repo}
}

// Create adds a listing owned by the authenticated seller.
func (uc *PlantUseCase) Create(ctx context.Context, sellerEmail string, in dto.CreatePlantRequest) (*dto.PlantResponse, error) {
	if in.Name == "" || in.Price.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	plant := &entity.Plant{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Image:       in.Image,
		Price:       in.Price,
		Quantity:    in.Quantity,
		SellerEmail: sellerEmail,
		SellerName:  in.SellerName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, plant); err != nil {
		return nil, err
	}
	return toPlantResponse(plant), nil
}

// GetByID fetches a listing. nil when absent.
func (uc *PlantUseCase) GetByID(ctx context.Context, id string) (*dto.PlantResponse, error) {
	plant, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, nil
	}
	return toPlantResponse(plant), nil
}

// List returns the whole catalog, newest first.
func (uc *PlantUseCase) List(ctx context.Context) ([]dto.PlantResponse, error) {
	plants, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlantResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, *toPlantResponse(p))
	}
	return out, nil
}

// UpdateQuantity applies a signed delta keyed by the increase/decrease tag.
// The counter is not clamped: a decrease below zero goes negative, matching
// the behavior order events rely on.
func (uc *PlantUseCase) UpdateQuantity(ctx context.Context, id string, in dto.UpdateQuantityRequest) (*dto.UpdateQuantityResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	var delta int
	switch in.Status {
	case dto.QuantityIncrease:
		delta = in.Quantity
	case dto.QuantityDecrease:
		delta = -in.Quantity
	default:
		return nil, domain.ErrInvalidInput
	}
	quantity, err := uc.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	return &dto.UpdateQuantityResponse{PlantID: id, Quantity: quantity}, nil
}

func toPlantResponse(p *entity.Plant) *dto.PlantResponse {
	if p == nil {
		return nil
	}
	return &dto.PlantResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
		Quantity:    p.Quantity,
		SellerEmail: p.SellerEmail,
		SellerName:  p.SellerName,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
