package factnet_db

import (
	"context"
	"errors"
	"fmt"

	"factnet/domain"
	"factnet/utils/logger"
)

const articleColumns = `
	id,
	article_id,
	title,
	description,
	url,
	source,
	language,
	category,
	published_date,
	created_at,
	fact_check_score,
	upvotes,
	downvotes,
	verified,
	verified_by,
	verified_at`

// FetchArticles retrieves one page of articles matching the filter, ordered
// by the query's sort option.
func (r *FactnetDBRepository) FetchArticles(ctx context.Context, q domain.ArticleQuery) ([]*domain.Article, error) {
	where, args := buildArticleFilter(q)

	query := fmt.Sprintf(`
		SELECT %s
		FROM articles
		%s
		%s
		OFFSET $%d LIMIT $%d
	`, articleColumns, where, articleOrderBy(q.Sort), len(args)+1, len(args)+2)
	args = append(args, q.Offset(), q.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching articles", "error", err, "page", q.Page, "limit", q.Limit)
		return nil, errors.New("error fetching articles list")
	}
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		var article domain.Article
		err := rows.Scan(
			&article.ID,
			&article.ArticleID,
			&article.Title,
			&article.Description,
			&article.URL,
			&article.Source,
			&article.Language,
			&article.Category,
			&article.PublishedDate,
			&article.CreatedAt,
			&article.FactCheckScore,
			&article.Upvotes,
			&article.Downvotes,
			&article.Verified,
			&article.VerifiedBy,
			&article.VerifiedAt,
		)
		if err != nil {
			logger.SafeErrorContext(ctx, "error scanning article row", "error", err)
			return nil, errors.New("error scanning articles list")
		}
		articles = append(articles, &article)
	}

	if err := rows.Err(); err != nil {
		logger.SafeErrorContext(ctx, "error iterating article rows", "error", err)
		return nil, errors.New("error processing articles list")
	}

	return articles, nil
}

// CountArticles returns the number of articles matching the filter.
func (r *FactnetDBRepository) CountArticles(ctx context.Context, q domain.ArticleQuery) (int, error) {
	where, args := buildArticleFilter(q)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM articles %s`, where)

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		logger.SafeErrorContext(ctx, "error counting articles", "error", err)
		return 0, errors.New("error counting articles")
	}

	return total, nil
}
