package register_article_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"factnet/domain"
	"factnet/mocks"
	"factnet/utils/logger"
)

func validArticle() *domain.Article {
	return &domain.Article{
		ArticleID:      "abc123",
		Title:          "Test Article",
		URL:            "https://example.com/article",
		Source:         "BBC News",
		PublishedDate:  time.Now(),
		FactCheckScore: 80,
	}
}

func TestRegisterArticleUsecase_Execute(t *testing.T) {
	logger.InitLogger()

	t.Run("saves a valid article", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockRegisterArticlePort(ctrl)
		mockGateway.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).Return(nil)

		usecase := NewRegisterArticleUsecase(mockGateway)
		err := usecase.Execute(context.Background(), validArticle())
		require.NoError(t, err)
	})

	t.Run("fills language and category defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockRegisterArticlePort(ctrl)
		var saved *domain.Article
		mockGateway.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *domain.Article) error {
				saved = a
				return nil
			})

		article := validArticle()
		article.Language = ""
		article.Category = ""

		usecase := NewRegisterArticleUsecase(mockGateway)
		require.NoError(t, usecase.Execute(context.Background(), article))
		assert.Equal(t, "en", saved.Language)
		assert.Equal(t, "Miscellaneous", saved.Category)
	})

	t.Run("clamps the fact-check score into range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockRegisterArticlePort(ctrl)
		mockGateway.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		usecase := NewRegisterArticleUsecase(mockGateway)

		high := validArticle()
		high.FactCheckScore = 150
		require.NoError(t, usecase.Execute(context.Background(), high))
		assert.Equal(t, 100, high.FactCheckScore)

		low := validArticle()
		low.FactCheckScore = -10
		require.NoError(t, usecase.Execute(context.Background(), low))
		assert.Equal(t, 0, low.FactCheckScore)
	})

	t.Run("rejects an incomplete article without touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockRegisterArticlePort(ctrl)
		usecase := NewRegisterArticleUsecase(mockGateway)

		article := validArticle()
		article.Title = ""
		require.Error(t, usecase.Execute(context.Background(), article))
	})

	t.Run("duplicate passes through unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockRegisterArticlePort(ctrl)
		mockGateway.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).Return(domain.ErrArticleAlreadyExists)

		usecase := NewRegisterArticleUsecase(mockGateway)
		err := usecase.Execute(context.Background(), validArticle())
		assert.ErrorIs(t, err, domain.ErrArticleAlreadyExists)
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockRegisterArticlePort(ctrl)
		mockGateway.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).Return(errors.New("store down"))

		usecase := NewRegisterArticleUsecase(mockGateway)
		require.Error(t, usecase.Execute(context.Background(), validArticle()))
	})
}
