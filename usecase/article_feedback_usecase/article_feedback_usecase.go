package article_feedback_usecase

import (
	"context"
	"errors"

	"factnet/domain"
	"factnet/port/article_feedback_port"
	"factnet/utils/logger"
	"factnet/utils/metrics"
)

// RecordVoteUsecase applies one feedback vote to an article's counters.
// The vote value is validated before any store access, so an invalid vote
// never mutates anything.
type RecordVoteUsecase struct {
	feedbackGateway article_feedback_port.ArticleFeedbackPort
}

func NewRecordVoteUsecase(feedbackGateway article_feedback_port.ArticleFeedbackPort) *RecordVoteUsecase {
	return &RecordVoteUsecase{feedbackGateway: feedbackGateway}
}

func (u *RecordVoteUsecase) Execute(ctx context.Context, articleID string, vote domain.VoteType) (*domain.VoteCounts, error) {
	if !vote.Valid() {
		return nil, domain.ErrInvalidVote
	}

	if articleID == "" {
		return nil, domain.ErrArticleNotFound
	}

	counts, err := u.feedbackGateway.RecordVote(ctx, articleID, vote)
	if err != nil {
		if !errors.Is(err, domain.ErrArticleNotFound) {
			logger.SafeErrorContext(ctx, "failed to record vote", "error", err, "article_id", articleID, "vote", vote)
		}
		return nil, err
	}

	metrics.VotesRecorded.WithLabelValues(string(vote)).Inc()
	logger.SafeInfoContext(ctx, "vote recorded", "article_id", articleID, "vote", vote,
		"upvotes", counts.Upvotes, "downvotes", counts.Downvotes)

	return counts, nil
}
