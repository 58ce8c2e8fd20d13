package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the only status this slice assigns; downstream
// fulfilment states live outside this service.
const OrderStatusPending = "pending"

// Order records a purchase. Immutable once created; it snapshots the plant's
// name and image so later catalog edits do not rewrite order history.
type Order struct {
	ID            string
	PlantID       string
	PlantName     string
	PlantImage    string
	Price         decimal.Decimal // total: unit price × quantity at purchase time
	Quantity      int
	CustomerEmail string
	CustomerName  string
	SellerEmail   string
	Address       string
	Status        string
	CreatedAt     time.Time
}
