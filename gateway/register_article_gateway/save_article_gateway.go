package register_article_gateway

import (
	"context"
	"errors"

	"factnet/domain"
	"factnet/driver/factnet_db"
	"factnet/utils/logger"
)

type SaveArticleGateway struct {
	repo *factnet_db.FactnetDBRepository
}

func NewSaveArticleGateway(pool factnet_db.Pool) *SaveArticleGateway {
	return &SaveArticleGateway{
		repo: factnet_db.NewFactnetDBRepository(pool),
	}
}

// SaveArticle stores a newly collected article. ErrArticleAlreadyExists
// passes through untouched so callers can count genuinely new articles.
func (g *SaveArticleGateway) SaveArticle(ctx context.Context, article *domain.Article) error {
	if g.repo == nil {
		return errors.New("database connection not available")
	}

	err := g.repo.SaveArticle(ctx, article)
	if err != nil {
		if !errors.Is(err, domain.ErrArticleAlreadyExists) {
			logger.SafeErrorContext(ctx, "Error saving article", "error", err, "article_id", article.ArticleID)
		}
		return err
	}

	return nil
}
