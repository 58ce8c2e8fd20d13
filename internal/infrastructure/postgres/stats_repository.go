package postgres

import (
	"context"
	"fmt"

	"github.com/plantnet/marketplace-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo read-only aggregation queries for the admin dashboard.
type StatsRepo struct {
	db DB
}

// NewStatsRepository builds the aggregation adapter.
func NewStatsRepository(db DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// GetTotals returns marketplace-wide counts plus total revenue.
// COALESCE yields zero when there are no orders yet.
func (r *StatsRepo) GetTotals(ctx context.Context) (*repository.Totals, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM users)                 AS total_users,
	    (SELECT COUNT(*) FROM plants)                AS total_plants,
	    (SELECT COUNT(*) FROM orders)                AS total_orders,
	    (SELECT COALESCE(SUM(price), 0) FROM orders) AS total_revenue`
	var t repository.Totals
	err := r.db.QueryRow(ctx, query).Scan(&t.Users, &t.Plants, &t.Orders, &t.Revenue)
	if err != nil {
		return nil, fmt.Errorf("stats.GetTotals: %w", err)
	}
	return &t, nil
}

// GetDailyRevenue groups orders on their creation date and sums price and
// count per day. The buckets sum back to GetTotals by construction.
func (r *StatsRepo) GetDailyRevenue(ctx context.Context) ([]repository.DailyRevenue, error) {
	const query = `
	SELECT
	    created_at::date AS day,
	    COUNT(*)         AS order_count,
	    SUM(price)       AS revenue
	FROM orders
	GROUP BY created_at::date
	ORDER BY day`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.GetDailyRevenue: %w", err)
	}
	defer rows.Close()

	var results []repository.DailyRevenue
	for rows.Next() {
		var row repository.DailyRevenue
		if err := rows.Scan(&row.Date, &row.Orders, &row.Revenue); err != nil {
			return nil, fmt.Errorf("stats.GetDailyRevenue scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
