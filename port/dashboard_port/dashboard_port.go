package dashboard_port

//go:generate go run go.uber.org/mock/mockgen -source=dashboard_port.go -destination=../../mocks/mock_dashboard_port.go -package=mocks DashboardPort

import (
	"context"

	"factnet/domain"
)

type DashboardPort interface {
	FetchDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
