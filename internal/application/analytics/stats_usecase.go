package analytics

import (
	"context"

	"github.com/plantnet/marketplace-api/internal/application/dto"
	"github.com/plantnet/marketplace-api/internal/domain/repository"
)

// StatsUseCase assembles the admin dashboard: marketplace totals plus the
// revenue-by-day series.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase builds the use case.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// AdminStats fetches totals and the daily series. Days are formatted as
// YYYY-MM-DD for the chart.
func (uc *StatsUseCase) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	totals, err := uc.repo.GetTotals(ctx)
	if err != nil {
		return nil, err
	}
	daily, err := uc.repo.GetDailyRevenue(ctx)
	if err != nil {
		return nil, err
	}
	chart := make([]dto.DailyRevenuePoint, 0, len(daily))
	for _, d := range daily {
		chart = append(chart, dto.DailyRevenuePoint{
			Date:    d.Date.Format("2006-01-02"),
			Orders:  d.Orders,
			Revenue: d.Revenue,
		})
	}
	return &dto.AdminStatsResponse{
		TotalUsers:   totals.Users,
		TotalPlants:  totals.Plants,
		TotalOrders:  totals.Orders,
		TotalRevenue: totals.Revenue,
		ChartData:    chart,
	}, nil
}
