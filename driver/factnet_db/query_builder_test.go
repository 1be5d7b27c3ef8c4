package factnet_db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"factnet/domain"
)

func TestBuildArticleFilter_Empty(t *testing.T) {
	where, args := buildArticleFilter(domain.ArticleQuery{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildArticleFilter_Category(t *testing.T) {
	where, args := buildArticleFilter(domain.ArticleQuery{Category: "Technology"})
	assert.Equal(t, "WHERE category = $1", where)
	assert.Equal(t, []any{"Technology"}, args)
}

func TestBuildArticleFilter_Search(t *testing.T) {
	where, args := buildArticleFilter(domain.ArticleQuery{Search: "climate"})
	assert.Equal(t, "WHERE (title ILIKE $1 OR description ILIKE $1)", where)
	assert.Equal(t, []any{"%climate%"}, args)
}

func TestBuildArticleFilter_SearchEscapesLikeMetacharacters(t *testing.T) {
	_, args := buildArticleFilter(domain.ArticleQuery{Search: "100%_done"})
	assert.Equal(t, []any{`%100\%\_done%`}, args)
}

func TestBuildArticleFilter_CombinedFilters(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	verified := true

	where, args := buildArticleFilter(domain.ArticleQuery{
		Category: "Health",
		Search:   "vaccine",
		From:     &from,
		To:       &to,
		Verified: &verified,
		Source:   "BBC News",
	})

	assert.Equal(t,
		"WHERE category = $1 AND (title ILIKE $2 OR description ILIKE $2) "+
			"AND published_date >= $3 AND published_date <= $4 "+
			"AND verified = $5 AND source = $6",
		where)
	assert.Equal(t, []any{"Health", "%vaccine%", from, to, true, "BBC News"}, args)
}

func TestArticleOrderBy(t *testing.T) {
	assert.Equal(t, "ORDER BY published_date DESC, id DESC", articleOrderBy(""))
	assert.Equal(t, "ORDER BY published_date DESC, id DESC", articleOrderBy(domain.SortNewest))
	// Unrecognized sort options fall back to the default ordering.
	assert.Equal(t, "ORDER BY published_date DESC, id DESC", articleOrderBy("oldest"))
}
