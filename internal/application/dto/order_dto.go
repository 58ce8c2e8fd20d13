package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest payload for POST /orders. The price is computed
// server-side from the stored plant price, never taken from the client.
type CreateOrderRequest struct {
	PlantID      string `json:"plant_id"`
	Quantity     int    `json:"quantity"`
	Address      string `json:"address"`
	CustomerName string `json:"customer_name"`
}

// OrderResponse order representation in responses.
type OrderResponse struct {
	ID            string          `json:"id"`
	PlantID       string          `json:"plant_id"`
	PlantName     string          `json:"plant_name"`
	PlantImage    string          `json:"plant_image,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	CustomerEmail string          `json:"customer_email"`
	CustomerName  string          `json:"customer_name,omitempty"`
	SellerEmail   string          `json:"seller_email"`
	Address       string          `json:"address,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PaymentIntentRequest payload for POST /create-payment-intent.
type PaymentIntentRequest struct {
	PlantID  string `json:"plant_id"`
	Quantity int    `json:"quantity"`
}

// PaymentIntentResponse client secret the frontend uses to confirm payment.
type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"` // smallest currency unit (cents)
	Currency     string `json:"currency"`
}
