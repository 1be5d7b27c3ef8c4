package rest

import (
	"net/http"
	"strconv"
	"time"

	"factnet/di"
	"factnet/domain"

	"github.com/labstack/echo/v4"
)

func registerArticleRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/articles", handleListArticles(container))
	v1.GET("/articles/:id", handleGetArticle(container))
	v1.POST("/articles/:id/feedback", handleArticleFeedback(container))
}

func handleListArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := parseListQuery(c)

		list, err := container.FetchArticlesListUsecase.Execute(c.Request().Context(), query)
		if err != nil {
			return handleError(c, err, "list_articles")
		}

		return c.JSON(http.StatusOK, list)
	}
}

func handleGetArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		article, err := container.FetchArticleByIDUsecase.Execute(c.Request().Context(), c.Param("id"))
		if err != nil {
			return handleError(c, err, "get_article")
		}

		return c.JSON(http.StatusOK, article)
	}
}

func handleArticleFeedback(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload FeedbackPayload
		if err := c.Bind(&payload); err != nil {
			return handleError(c, domain.ErrInvalidVote, "submit_feedback")
		}

		counts, err := container.RecordVoteUsecase.Execute(
			c.Request().Context(), c.Param("id"), domain.VoteType(payload.Vote))
		if err != nil {
			return handleError(c, err, "submit_feedback")
		}

		return c.JSON(http.StatusOK, FeedbackResponse{
			Message:   "Feedback submitted successfully",
			Upvotes:   counts.Upvotes,
			Downvotes: counts.Downvotes,
		})
	}
}

// parseListQuery coerces the recognized query options. Non-numeric or
// missing page/limit fall back to their defaults; unrecognized options
// are ignored.
func parseListQuery(c echo.Context) domain.ArticleQuery {
	q := domain.ArticleQuery{
		Page:     domain.DefaultPage,
		Limit:    domain.DefaultLimit,
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Sort:     c.QueryParam("sort"),
		Source:   c.QueryParam("source"),
	}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		q.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		q.Limit = limit
	}

	if from, ok := parseDateParam(c.QueryParam("from")); ok {
		q.From = &from
	}
	if to, ok := parseDateParam(c.QueryParam("to")); ok {
		q.To = &to
	}

	if raw := c.QueryParam("verified"); raw != "" {
		if verified, err := strconv.ParseBool(raw); err == nil {
			q.Verified = &verified
		}
	}

	return q
}

// parseDateParam accepts ISO-8601 timestamps and bare dates.
func parseDateParam(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
