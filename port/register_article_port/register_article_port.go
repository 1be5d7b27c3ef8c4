package register_article_port

//go:generate go run go.uber.org/mock/mockgen -source=register_article_port.go -destination=../../mocks/mock_register_article_port.go -package=mocks RegisterArticlePort

import (
	"context"

	"factnet/domain"
)

type RegisterArticlePort interface {
	SaveArticle(ctx context.Context, article *domain.Article) error
}
