package job

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"factnet/config"
	"factnet/domain"
	"factnet/usecase/register_article_usecase"
	"factnet/utils/logger"
)

// FeedCollector pulls articles from configured RSS feeds and registers the
// new ones through the register usecase.
type FeedCollector struct {
	sources    []config.FeedSource
	register   *register_article_usecase.RegisterArticleUsecase
	httpClient *http.Client
}

func NewFeedCollector(sources []config.FeedSource, register *register_article_usecase.RegisterArticleUsecase) *FeedCollector {
	return &FeedCollector{
		sources:  sources,
		register: register,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Collect fetches every configured feed once. Failures on individual feeds
// are logged and do not abort the run.
func (c *FeedCollector) Collect(ctx context.Context) error {
	var lastErr error

	for _, source := range c.sources {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		registered, skipped, err := c.collectFeed(ctx, source)
		if err != nil {
			logger.SafeErrorContext(ctx, "failed to collect feed", "source", source.Name, "url", source.URL, "error", err)
			lastErr = err
			continue
		}

		logger.SafeInfoContext(ctx, "feed collected", "source", source.Name, "registered", registered, "skipped", skipped)
	}

	return lastErr
}

func (c *FeedCollector) collectFeed(ctx context.Context, source config.FeedSource) (registered, skipped int, err error) {
	fp := gofeed.NewParser()
	fp.Client = c.httpClient

	feed, err := fp.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, item := range feed.Items {
		if item == nil || item.Title == "" || item.Link == "" {
			continue
		}

		article := c.buildArticle(source, item)

		if err := c.register.Execute(ctx, article); err != nil {
			if errors.Is(err, domain.ErrArticleAlreadyExists) {
				skipped++
				continue
			}
			logger.SafeErrorContext(ctx, "failed to register collected article", "article_id", article.ArticleID, "error", err)
			continue
		}

		registered++
	}

	return registered, skipped, nil
}

func (c *FeedCollector) buildArticle(source config.FeedSource, item *gofeed.Item) *domain.Article {
	published := time.Now().UTC()
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.UTC()
	}

	return &domain.Article{
		ArticleID:     ArticleID(item.Link, item.Title),
		Title:         item.Title,
		Description:   item.Description,
		URL:           item.Link,
		Source:        source.Name,
		Language:      "en",
		Category:      Categorize(item.Title, item.Description),
		PublishedDate: published,
		// Placeholder until a real fact-checking pipeline assigns scores.
		FactCheckScore: 50 + rand.Intn(51),
	}
}

// ArticleID derives a stable identifier from an article's url and title.
func ArticleID(url, title string) string {
	sum := md5.Sum([]byte(url + "_" + title))
	return hex.EncodeToString(sum[:])
}
