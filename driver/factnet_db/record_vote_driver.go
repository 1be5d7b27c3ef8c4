package factnet_db

import (
	"context"
	"errors"

	"factnet/domain"
	"factnet/utils/logger"

	"github.com/jackc/pgx/v5"
)

// RecordVote increments the matching counter by exactly one in a single
// atomic UPDATE. Concurrent votes on the same article serialize at the row
// level, so N successful votes always move the counter by N.
func (r *FactnetDBRepository) RecordVote(ctx context.Context, articleID string, vote domain.VoteType) (*domain.VoteCounts, error) {
	var query string
	switch vote {
	case domain.VoteUpvote:
		query = `
			UPDATE articles
			SET upvotes = upvotes + 1
			WHERE article_id = $1
			RETURNING upvotes, downvotes
		`
	case domain.VoteDownvote:
		query = `
			UPDATE articles
			SET downvotes = downvotes + 1
			WHERE article_id = $1
			RETURNING upvotes, downvotes
		`
	default:
		return nil, domain.ErrInvalidVote
	}

	var counts domain.VoteCounts
	err := r.pool.QueryRow(ctx, query, articleID).Scan(&counts.Upvotes, &counts.Downvotes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		logger.SafeErrorContext(ctx, "error recording vote", "error", err, "article_id", articleID, "vote", vote)
		return nil, errors.New("error recording vote")
	}

	return &counts, nil
}
