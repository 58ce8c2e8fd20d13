package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/plantnet/marketplace-api/internal/application/dto"
	"github.com/plantnet/marketplace-api/internal/application/ports"
	"github.com/plantnet/marketplace-api/internal/domain"
	"github.com/plantnet/marketplace-api/internal/domain/entity"
	"github.com/plantnet/marketplace-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OrderUseCase order creation with inventory decrement, buyer/seller
// listings, and payment-intent creation.
type OrderUseCase struct {
	txRunner   TxRunner
	plantRepo  repository.PlantRepository
	orderRepo  repository.OrderRepository
	paymentSvc ports.PaymentService
	currency   string
}

// NewOrderUseCase builds the use case.
func NewOrderUseCase(
	txRunner TxRunner,
	plantRepo repository.PlantRepository,
	orderRepo repository.OrderRepository,
	paymentSvc ports.PaymentService,
	currency string,
) *OrderUseCase {
	if currency == "" {
		currency = "usd"
	}
	return &OrderUseCase{
		txRunner:   txRunner,
		plantRepo:  plantRepo,
		orderRepo:  orderRepo,
		paymentSvc: paymentSvc,
		currency:   currency,
	}
}

// Create inserts the order and decrements the plant quantity inside one
// transaction: the row is locked, stock is checked, and both writes commit
// together. The total price comes from the stored plant price, not the client.
func (uc *OrderUseCase) Create(ctx context.Context, customerEmail string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.PlantID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var order *entity.Order
	err := uc.txRunner.Run(ctx, func(plantRepo repository.PlantRepository, orderRepo repository.OrderRepository) error {
		plant, err := plantRepo.GetForUpdate(ctx, in.PlantID)
		if err != nil {
			return err
		}
		if plant == nil {
			return domain.ErrNotFound
		}
		if plant.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}
		now := time.Now()
		order = &entity.Order{
			ID:            uuid.New().String(),
			PlantID:       plant.ID,
			PlantName:     plant.Name,
			PlantImage:    plant.Image,
			Price:         plant.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
			Quantity:      in.Quantity,
			CustomerEmail: customerEmail,
			CustomerName:  in.CustomerName,
			SellerEmail:   plant.SellerEmail,
			Address:       in.Address,
			Status:        entity.OrderStatusPending,
			CreatedAt:     now,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		if _, err := plantRepo.AdjustQuantity(ctx, plant.ID, -in.Quantity); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListByCustomer returns the buyer's orders.
func (uc *OrderUseCase) ListByCustomer(ctx context.Context, email string) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListByCustomer(ctx, email)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListBySeller returns orders placed against the seller's listings.
func (uc *OrderUseCase) ListBySeller(ctx context.Context, email string) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListBySeller(ctx, email)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// CreatePaymentIntent computes amount = stored price × quantity and delegates
// to the payment provider. An absent plant is ErrNotFound and the provider is
// never called.
func (uc *OrderUseCase) CreatePaymentIntent(ctx context.Context, in dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	if in.PlantID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	plant, err := uc.plantRepo.GetByID(ctx, in.PlantID)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, domain.ErrNotFound
	}
	// Total in the smallest currency unit, rounded to whole cents.
	amount := plant.Price.
		Mul(decimal.NewFromInt(int64(in.Quantity))).
		Shift(2).
		Round(0).
		IntPart()
	intent, err := uc.paymentSvc.CreateIntent(ctx, amount, uc.currency)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	}, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		PlantID:       o.PlantID,
		PlantName:     o.PlantName,
		PlantImage:    o.PlantImage,
		Price:         o.Price,
		Quantity:      o.Quantity,
		CustomerEmail: o.CustomerEmail,
		CustomerName:  o.CustomerName,
		SellerEmail:   o.SellerEmail,
		Address:       o.Address,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out
}
