package factnet_db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factnet/domain"
)

func TestFactnetDBRepository_FetchArticleByID_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &FactnetDBRepository{pool: mock}

	id := uuid.New()
	published := time.Now().Add(-3 * time.Hour)
	checkedAt := time.Now().Add(-time.Hour)

	mock.ExpectQuery("SELECT").
		WithArgs("abc123").
		WillReturnRows(pgxmock.NewRows(articleRowColumns).AddRow(
			id, "abc123", "Test Article", "A description", "https://example.com/article",
			"Reuters", "en", "Politics", published, published, 90,
			10, 2, true, strPtr("moderator"), &checkedAt,
		))

	mock.ExpectQuery("SELECT reviewer").
		WithArgs(id).
		WillReturnRows(
			pgxmock.NewRows([]string{"reviewer", "score", "comment", "evidence", "created_at"}).
				AddRow("factcheck.org", 92, "Claims verified", []string{"https://factcheck.org/a"}, checkedAt),
		)

	mock.ExpectQuery("SELECT user_name").
		WithArgs(id).
		WillReturnRows(
			pgxmock.NewRows([]string{"user_name", "vote", "created_at"}).
				AddRow("reader1", domain.VoteUpvote, checkedAt),
		)

	article, err := repo.FetchArticleByID(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", article.ArticleID)
	assert.True(t, article.Verified)
	require.NotNil(t, article.VerifiedBy)
	assert.Equal(t, "moderator", *article.VerifiedBy)
	require.Len(t, article.FactChecks, 1)
	assert.Equal(t, "factcheck.org", article.FactChecks[0].Reviewer)
	assert.Equal(t, 92, article.FactChecks[0].Score)
	require.Len(t, article.UserFeedback, 1)
	assert.Equal(t, domain.VoteUpvote, article.UserFeedback[0].Vote)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFactnetDBRepository_FetchArticleByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &FactnetDBRepository{pool: mock}

	mock.ExpectQuery("SELECT").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FetchArticleByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func strPtr(s string) *string {
	return &s
}
