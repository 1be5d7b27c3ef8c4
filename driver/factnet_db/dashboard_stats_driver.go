package factnet_db

import (
	"context"
	"errors"

	"factnet/domain"
	"factnet/utils/logger"
)

// FetchDashboardStats computes the admin dashboard aggregates in one query.
func (r *FactnetDBRepository) FetchDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE verified),
			COALESCE(AVG(fact_check_score), 0)
		FROM articles
	`).Scan(&stats.TotalArticles, &stats.VerifiedArticles, &stats.AverageFactCheckScore)
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching dashboard stats", "error", err)
		return nil, errors.New("error fetching dashboard stats")
	}

	stats.PendingValidation = stats.TotalArticles - stats.VerifiedArticles

	return &stats, nil
}
