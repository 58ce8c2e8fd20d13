package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plant represents a catalog listing owned by a seller.
// Quantity is a mutable counter adjusted by order events and by the seller's
// signed inventory updates.
type Plant struct {
	ID          string
	Name        string
	Category    string
	Description string
	Image       string
	Price       decimal.Decimal // unit price
	Quantity    int
	SellerEmail string
	SellerName  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
