package fetch_articles_port

//go:generate go run go.uber.org/mock/mockgen -source=fetch_articles_port.go -destination=../../mocks/mock_fetch_articles_port.go -package=mocks FetchArticlesPort

import (
	"context"

	"factnet/domain"
)

type FetchArticlesPort interface {
	FetchArticles(ctx context.Context, q domain.ArticleQuery) ([]*domain.Article, error)
	CountArticles(ctx context.Context, q domain.ArticleQuery) (int, error)
	FetchArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
}
