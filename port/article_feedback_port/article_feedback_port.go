package article_feedback_port

//go:generate go run go.uber.org/mock/mockgen -source=article_feedback_port.go -destination=../../mocks/mock_article_feedback_port.go -package=mocks ArticleFeedbackPort

import (
	"context"

	"factnet/domain"
)

type ArticleFeedbackPort interface {
	RecordVote(ctx context.Context, articleID string, vote domain.VoteType) (*domain.VoteCounts, error)
}
