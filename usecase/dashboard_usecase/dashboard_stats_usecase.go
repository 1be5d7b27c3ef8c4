package dashboard_usecase

import (
	"context"

	"factnet/domain"
	"factnet/port/dashboard_port"
	"factnet/utils/logger"
)

type DashboardStatsUsecase struct {
	dashboardGateway dashboard_port.DashboardPort
}

func NewDashboardStatsUsecase(dashboardGateway dashboard_port.DashboardPort) *DashboardStatsUsecase {
	return &DashboardStatsUsecase{dashboardGateway: dashboardGateway}
}

func (u *DashboardStatsUsecase) Execute(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := u.dashboardGateway.FetchDashboardStats(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch dashboard stats", "error", err)
		return nil, err
	}

	return stats, nil
}
