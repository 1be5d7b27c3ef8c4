package feedback_gateway

import (
	"context"
	"errors"

	"factnet/domain"
	"factnet/driver/factnet_db"
	"factnet/utils/logger"
)

type RecordVoteGateway struct {
	repo *factnet_db.FactnetDBRepository
}

func NewRecordVoteGateway(pool factnet_db.Pool) *RecordVoteGateway {
	return &RecordVoteGateway{
		repo: factnet_db.NewFactnetDBRepository(pool),
	}
}

// RecordVote increments the matching counter atomically at the store layer.
func (g *RecordVoteGateway) RecordVote(ctx context.Context, articleID string, vote domain.VoteType) (*domain.VoteCounts, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	counts, err := g.repo.RecordVote(ctx, articleID, vote)
	if err != nil {
		if !errors.Is(err, domain.ErrArticleNotFound) && !errors.Is(err, domain.ErrInvalidVote) {
			logger.SafeErrorContext(ctx, "Error recording vote", "error", err, "article_id", articleID)
		}
		return nil, err
	}

	return counts, nil
}
