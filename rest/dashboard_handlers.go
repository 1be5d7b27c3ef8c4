package rest

import (
	"net/http"

	"factnet/di"

	"github.com/labstack/echo/v4"
)

func registerDashboardRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/dashboard/stats", handleDashboardStats(container))
}

func handleDashboardStats(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := container.DashboardStatsUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "dashboard_stats")
		}

		return c.JSON(http.StatusOK, stats)
	}
}
