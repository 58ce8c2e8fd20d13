package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyRevenue is one bucket of the revenue-by-day report.
type DailyRevenue struct {
	Date    time.Time
	Orders  int64
	Revenue decimal.Decimal
}

// Totals are the marketplace-wide counters shown on the admin dashboard.
type Totals struct {
	Users   int64
	Plants  int64
	Orders  int64
	Revenue decimal.Decimal
}

// StatsRepository read-only aggregation port for the admin dashboard.
type StatsRepository interface {
	GetTotals(ctx context.Context) (*Totals, error)

	// GetDailyRevenue groups orders on their creation date and sums price and
	// count per day, oldest first.
	GetDailyRevenue(ctx context.Context) ([]DailyRevenue, error)
}
