package fetch_articles_usecase

import (
	"context"
	"errors"

	"factnet/domain"
	"factnet/port/fetch_articles_port"
	"factnet/utils/logger"
)

// FetchArticlesListUsecase serves the paginated article listing. Options
// are coerced, never rejected: a page or limit below 1 falls back to the
// defaults, and the "all" category sentinel clears the filter.
type FetchArticlesListUsecase struct {
	fetchArticlesGateway fetch_articles_port.FetchArticlesPort
}

func NewFetchArticlesListUsecase(fetchArticlesGateway fetch_articles_port.FetchArticlesPort) *FetchArticlesListUsecase {
	return &FetchArticlesListUsecase{fetchArticlesGateway: fetchArticlesGateway}
}

func (u *FetchArticlesListUsecase) Execute(ctx context.Context, q domain.ArticleQuery) (*domain.ArticleList, error) {
	q = q.Normalize()

	articles, err := u.fetchArticlesGateway.FetchArticles(ctx, q)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch articles", "error", err, "page", q.Page, "limit", q.Limit)
		return nil, err
	}

	total, err := u.fetchArticlesGateway.CountArticles(ctx, q)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to count articles", "error", err)
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}

	if articles == nil {
		articles = []*domain.Article{}
	}

	logger.SafeInfoContext(ctx, "fetched articles", "count", len(articles), "total", total, "page", q.Page)

	return &domain.ArticleList{
		Articles:      articles,
		CurrentPage:   q.Page,
		TotalPages:    totalPages,
		TotalArticles: total,
	}, nil
}

// FetchArticleByIDUsecase looks an article up by its external article_id,
// never the internal storage key.
type FetchArticleByIDUsecase struct {
	fetchArticlesGateway fetch_articles_port.FetchArticlesPort
}

func NewFetchArticleByIDUsecase(fetchArticlesGateway fetch_articles_port.FetchArticlesPort) *FetchArticleByIDUsecase {
	return &FetchArticleByIDUsecase{fetchArticlesGateway: fetchArticlesGateway}
}

func (u *FetchArticleByIDUsecase) Execute(ctx context.Context, articleID string) (*domain.Article, error) {
	if articleID == "" {
		return nil, domain.ErrArticleNotFound
	}

	article, err := u.fetchArticlesGateway.FetchArticleByID(ctx, articleID)
	if err != nil {
		if !errors.Is(err, domain.ErrArticleNotFound) {
			logger.SafeErrorContext(ctx, "failed to fetch article", "error", err, "article_id", articleID)
		}
		return nil, err
	}

	return article, nil
}
