package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/plantnet/marketplace-api/internal/application/dto"
	"github.com/plantnet/marketplace-api/internal/application/orders"
	"github.com/plantnet/marketplace-api/internal/domain"
)

// OrderHandler order creation and the buyer/seller listings.
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler builds the handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Place an order (decrements plant stock transactionally)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "plant id, quantity, address"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	customerEmail := GetEmail(c)
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(c.Context(), customerEmail, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plant_id and a positive quantity are required"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plant not found"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "not enough stock for this order"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCustomer godoc
// @Summary      Orders placed by a buyer
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "buyer email (must match credential)"
// @Success      200    {array}  dto.OrderResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /orders/customer/{email} [get]
func (h *OrderHandler) ListByCustomer(c *fiber.Ctx) error {
	out, err := h.uc.ListByCustomer(c.Context(), c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListBySeller godoc
// @Summary      Orders placed against a seller's listings
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "seller email (must match credential)"
// @Success      200    {array}  dto.OrderResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /orders/seller/{email} [get]
func (h *OrderHandler) ListBySeller(c *fiber.Ctx) error {
	out, err := h.uc.ListBySeller(c.Context(), c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreatePaymentIntent godoc
// @Summary      Create a payment intent for a plant purchase
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentIntentRequest  true  "plant id and quantity"
// @Success      200   {object}  dto.PaymentIntentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /create-payment-intent [post]
func (h *OrderHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var in dto.PaymentIntentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.CreatePaymentIntent(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plant_id and a positive quantity are required"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plant not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
