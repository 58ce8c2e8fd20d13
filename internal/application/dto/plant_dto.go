package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePlantRequest payload for a new listing (seller-gated). The owning
// seller email always comes from the verified credential, never the body.
type CreatePlantRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	SellerName  string          `json:"seller_name"`
}

// PlantResponse plant representation in responses.
type PlantResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	SellerEmail string          `json:"seller_email"`
	SellerName  string          `json:"seller_name,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Tags for quantity adjustment requests.
const (
	QuantityIncrease = "increase"
	QuantityDecrease = "decrease"
)

// UpdateQuantityRequest signed inventory delta keyed by the increase/decrease tag.
type UpdateQuantityRequest struct {
	Quantity int    `json:"quantity"`
	Status   string `json:"status"` // increase | decrease
}

// UpdateQuantityResponse new counter value after the adjustment.
type UpdateQuantityResponse struct {
	PlantID  string `json:"plant_id"`
	Quantity int    `json:"quantity"`
}
