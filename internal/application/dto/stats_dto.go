package dto

import "github.com/shopspring/decimal"

// DailyRevenuePoint one bucket of the revenue-by-day chart.
type DailyRevenuePoint struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// AdminStatsResponse aggregate counters plus the daily revenue series.
// The series sums back to TotalOrders and TotalRevenue.
type AdminStatsResponse struct {
	TotalUsers   int64               `json:"total_users"`
	TotalPlants  int64               `json:"total_plants"`
	TotalOrders  int64               `json:"total_orders"`
	TotalRevenue decimal.Decimal     `json:"total_revenue"`
	ChartData    []DailyRevenuePoint `json:"chart_data"`
}
