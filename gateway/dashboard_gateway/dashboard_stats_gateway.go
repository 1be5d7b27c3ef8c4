package dashboard_gateway

import (
	"context"
	"errors"

	"factnet/domain"
	"factnet/driver/factnet_db"
	"factnet/utils/logger"
)

type DashboardStatsGateway struct {
	repo *factnet_db.FactnetDBRepository
}

func NewDashboardStatsGateway(pool factnet_db.Pool) *DashboardStatsGateway {
	return &DashboardStatsGateway{
		repo: factnet_db.NewFactnetDBRepository(pool),
	}
}

func (g *DashboardStatsGateway) FetchDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	stats, err := g.repo.FetchDashboardStats(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching dashboard stats", "error", err)
		return nil, err
	}

	return stats, nil
}
