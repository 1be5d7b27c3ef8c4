package dashboard_usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"factnet/domain"
	"factnet/mocks"
	"factnet/utils/logger"
)

func TestDashboardStatsUsecase_Execute(t *testing.T) {
	logger.InitLogger()

	t.Run("returns the aggregates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockDashboardPort(ctrl)
		want := &domain.DashboardStats{
			TotalArticles:         120,
			VerifiedArticles:      45,
			AverageFactCheckScore: 68.5,
			PendingValidation:     75,
		}
		mockGateway.EXPECT().FetchDashboardStats(gomock.Any()).Return(want, nil)

		usecase := NewDashboardStatsUsecase(mockGateway)
		stats, err := usecase.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, stats)
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockDashboardPort(ctrl)
		mockGateway.EXPECT().FetchDashboardStats(gomock.Any()).Return(nil, errors.New("store down"))

		usecase := NewDashboardStatsUsecase(mockGateway)
		_, err := usecase.Execute(context.Background())
		require.Error(t, err)
	})
}
