package factnet_db

import (
	"context"
	"errors"

	"factnet/domain"
	"factnet/utils/logger"

	"github.com/google/uuid"
)

// SaveArticle inserts a new article. The insert is idempotent: an article
// whose article_id or url already exists is skipped and reported as
// ErrArticleAlreadyExists, which the ingest job treats as "seen before".
func (r *FactnetDBRepository) SaveArticle(ctx context.Context, article *domain.Article) error {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}

	tag, err := r.pool.Exec(ctx, `
		INSERT INTO articles (
			id, article_id, title, description, url, source, language,
			category, published_date, created_at, fact_check_score,
			upvotes, downvotes, verified
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), $10, 0, 0, FALSE)
		ON CONFLICT DO NOTHING
	`,
		article.ID,
		article.ArticleID,
		article.Title,
		article.Description,
		article.URL,
		article.Source,
		article.Language,
		article.Category,
		article.PublishedDate,
		article.FactCheckScore,
	)
	if err != nil {
		logger.SafeErrorContext(ctx, "error saving article", "error", err, "article_id", article.ArticleID)
		return errors.New("error saving article")
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrArticleAlreadyExists
	}

	return nil
}

// ArticleExists reports whether an article with the given external id is
// already stored.
func (r *FactnetDBRepository) ArticleExists(ctx context.Context, articleID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`, articleID,
	).Scan(&exists)
	if err != nil {
		logger.SafeErrorContext(ctx, "error checking article existence", "error", err, "article_id", articleID)
		return false, errors.New("error checking article existence")
	}
	return exists, nil
}
