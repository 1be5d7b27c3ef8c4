package rest

import (
	stderrors "errors"
	"net/http"

	"factnet/domain"
	"factnet/utils/errors"
	"factnet/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to HTTP responses. Domain sentinels map to
// their statuses with the original API's messages; everything else becomes
// a generic 5xx so no internal detail leaks.
func handleError(c echo.Context, err error, operation string) error {
	switch {
	case stderrors.Is(err, domain.ErrArticleNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "Article not found"})
	case stderrors.Is(err, domain.ErrInvalidVote):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid vote type"})
	}

	var enrichedErr *errors.AppContextError

	if appContextErr, ok := err.(*errors.AppContextError); ok {
		enrichedErr = errors.EnrichWithContext(
			appContextErr,
			"rest",
			"RESTHandler",
			operation,
			map[string]any{
				"path":       c.Request().URL.Path,
				"method":     c.Request().Method,
				"request_id": c.Response().Header().Get("X-Request-ID"),
			},
		)
	} else {
		enrichedErr = errors.NewDatabaseContextError(
			errorMessageFor(operation),
			"rest",
			"RESTHandler",
			operation,
			err,
			map[string]any{
				"path":       c.Request().URL.Path,
				"method":     c.Request().Method,
				"request_id": c.Response().Header().Get("X-Request-ID"),
			},
		)
	}

	logger.Logger.Error("REST handler error",
		"error", enrichedErr.Error(),
		"error_code", enrichedErr.Code,
		"layer", enrichedErr.Layer,
		"operation", enrichedErr.Operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	return c.JSON(enrichedErr.HTTPStatusCode(), enrichedErr.ToHTTPResponse())
}

// errorMessageFor picks the original API's generic message per operation.
func errorMessageFor(operation string) string {
	switch operation {
	case "list_articles":
		return "Error fetching articles"
	case "get_article":
		return "Error fetching article"
	case "submit_feedback":
		return "Error submitting feedback"
	case "dashboard_stats":
		return "Error fetching dashboard stats"
	default:
		return "Something went wrong!"
	}
}
