package register_article_usecase

import (
	"context"
	"errors"

	"factnet/domain"
	"factnet/port/register_article_port"
	"factnet/utils/logger"
	"factnet/utils/metrics"
)

// RegisterArticleUsecase stores articles collected by the ingest job.
type RegisterArticleUsecase struct {
	registerGateway register_article_port.RegisterArticlePort
}

func NewRegisterArticleUsecase(registerGateway register_article_port.RegisterArticlePort) *RegisterArticleUsecase {
	return &RegisterArticleUsecase{registerGateway: registerGateway}
}

// Execute validates and stores one article. It returns
// domain.ErrArticleAlreadyExists for articles seen before, which callers
// count separately from failures.
func (u *RegisterArticleUsecase) Execute(ctx context.Context, article *domain.Article) error {
	if article.ArticleID == "" || article.Title == "" || article.URL == "" {
		return errors.New("article must have an id, title and url")
	}

	if article.Language == "" {
		article.Language = "en"
	}
	if article.Category == "" {
		article.Category = "Miscellaneous"
	}
	if article.FactCheckScore < 0 {
		article.FactCheckScore = 0
	}
	if article.FactCheckScore > 100 {
		article.FactCheckScore = 100
	}

	err := u.registerGateway.SaveArticle(ctx, article)
	if err != nil {
		if errors.Is(err, domain.ErrArticleAlreadyExists) {
			return err
		}
		logger.SafeErrorContext(ctx, "failed to register article", "error", err, "article_id", article.ArticleID)
		return err
	}

	metrics.ArticlesIngested.Inc()
	logger.SafeInfoContext(ctx, "article registered", "article_id", article.ArticleID, "source", article.Source, "category", article.Category)

	return nil
}
