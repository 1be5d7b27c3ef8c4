package factnet_db

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factnet/domain"
	"factnet/utils/logger"
)

func init() {
	// Initialize logger for tests
	var buf bytes.Buffer
	testLogger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger.Logger = testLogger
}

var articleRowColumns = []string{
	"id", "article_id", "title", "description", "url", "source", "language",
	"category", "published_date", "created_at", "fact_check_score",
	"upvotes", "downvotes", "verified", "verified_by", "verified_at",
}

func TestFactnetDBRepository_FetchArticles_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &FactnetDBRepository{pool: mock}

	ctx := context.Background()
	published := time.Now().Add(-2 * time.Hour)

	rows := pgxmock.NewRows(articleRowColumns).AddRow(
		uuid.New(), "abc123", "Test Article", "A description", "https://example.com/article",
		"BBC News", "en", "Technology", published, published, 85,
		3, 1, false, (*string)(nil), (*time.Time)(nil),
	)

	mock.ExpectQuery("SELECT").
		WithArgs(0, 10).
		WillReturnRows(rows)

	q := domain.ArticleQuery{Page: 1, Limit: 10}
	articles, err := repo.FetchArticles(ctx, q)
	require.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Equal(t, "abc123", articles[0].ArticleID)
	assert.Equal(t, "Test Article", articles[0].Title)
	assert.Equal(t, 85, articles[0].FactCheckScore)
	assert.Equal(t, 3, articles[0].Upvotes)
	assert.Equal(t, 1, articles[0].Downvotes)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFactnetDBRepository_FetchArticles_WithFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &FactnetDBRepository{pool: mock}

	ctx := context.Background()

	rows := pgxmock.NewRows(articleRowColumns)

	// Filter args come first, then offset and limit.
	mock.ExpectQuery("SELECT").
		WithArgs("Health", "%vaccine%", 20, 10).
		WillReturnRows(rows)

	q := domain.ArticleQuery{Page: 3, Limit: 10, Category: "Health", Search: "vaccine"}
	articles, err := repo.FetchArticles(ctx, q)
	require.NoError(t, err)
	assert.Empty(t, articles)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFactnetDBRepository_FetchArticles_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &FactnetDBRepository{pool: mock}

	mock.ExpectQuery("SELECT").
		WithArgs(0, 10).
		WillReturnError(errors.New("connection refused"))

	_, err = repo.FetchArticles(context.Background(), domain.ArticleQuery{Page: 1, Limit: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error fetching articles list")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFactnetDBRepository_CountArticles_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &FactnetDBRepository{pool: mock}

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("Technology").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	total, err := repo.CountArticles(context.Background(), domain.ArticleQuery{Category: "Technology"})
	require.NoError(t, err)
	assert.Equal(t, 42, total)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFactnetDBRepository_CountArticles_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &FactnetDBRepository{pool: mock}

	mock.ExpectQuery("SELECT COUNT").
		WillReturnError(errors.New("connection refused"))

	_, err = repo.CountArticles(context.Background(), domain.ArticleQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error counting articles")

	require.NoError(t, mock.ExpectationsWereMet())
}
