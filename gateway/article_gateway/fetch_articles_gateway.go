package article_gateway

import (
	"context"
	"errors"

	"factnet/domain"
	"factnet/driver/factnet_db"
	"factnet/utils/logger"
)

type FetchArticlesGateway struct {
	repo *factnet_db.FactnetDBRepository
}

func NewFetchArticlesGateway(pool factnet_db.Pool) *FetchArticlesGateway {
	return &FetchArticlesGateway{
		repo: factnet_db.NewFactnetDBRepository(pool),
	}
}

// FetchArticles retrieves one page of articles matching the filter.
func (g *FetchArticlesGateway) FetchArticles(ctx context.Context, q domain.ArticleQuery) ([]*domain.Article, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	articles, err := g.repo.FetchArticles(ctx, q)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching articles", "error", err)
		return nil, err
	}

	return articles, nil
}

// CountArticles returns the total number of articles matching the filter.
func (g *FetchArticlesGateway) CountArticles(ctx context.Context, q domain.ArticleQuery) (int, error) {
	if g.repo == nil {
		return 0, errors.New("database connection not available")
	}

	total, err := g.repo.CountArticles(ctx, q)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error counting articles", "error", err)
		return 0, err
	}

	return total, nil
}

// FetchArticleByID retrieves a single article by its external id.
func (g *FetchArticlesGateway) FetchArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	article, err := g.repo.FetchArticleByID(ctx, articleID)
	if err != nil {
		if !errors.Is(err, domain.ErrArticleNotFound) {
			logger.SafeErrorContext(ctx, "Error fetching article by id", "error", err, "article_id", articleID)
		}
		return nil, err
	}

	return article, nil
}
