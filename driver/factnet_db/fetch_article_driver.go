package factnet_db

import (
	"context"
	"errors"
	"fmt"

	"factnet/domain"
	"factnet/utils/logger"

	"github.com/jackc/pgx/v5"
)

// FetchArticleByID retrieves a single article by its external article_id,
// including its fact_checks and user_feedback sequences in insertion order.
func (r *FactnetDBRepository) FetchArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles
		WHERE article_id = $1
	`, articleColumns)

	var article domain.Article
	err := r.pool.QueryRow(ctx, query, articleID).Scan(
		&article.ID,
		&article.ArticleID,
		&article.Title,
		&article.Description,
		&article.URL,
		&article.Source,
		&article.Language,
		&article.Category,
		&article.PublishedDate,
		&article.CreatedAt,
		&article.FactCheckScore,
		&article.Upvotes,
		&article.Downvotes,
		&article.Verified,
		&article.VerifiedBy,
		&article.VerifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		logger.SafeErrorContext(ctx, "error fetching article", "error", err, "article_id", articleID)
		return nil, errors.New("error fetching article")
	}

	factChecks, err := r.fetchFactChecks(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	article.FactChecks = factChecks

	feedback, err := r.fetchUserFeedback(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	article.UserFeedback = feedback

	return &article, nil
}

func (r *FactnetDBRepository) fetchFactChecks(ctx context.Context, articleID any) ([]domain.FactCheck, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT reviewer, score, comment, evidence, created_at
		FROM fact_checks
		WHERE article_id = $1
		ORDER BY created_at ASC
	`, articleID)
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching fact checks", "error", err)
		return nil, errors.New("error fetching fact checks")
	}
	defer rows.Close()

	var checks []domain.FactCheck
	for rows.Next() {
		var check domain.FactCheck
		if err := rows.Scan(&check.Reviewer, &check.Score, &check.Comment, &check.Evidence, &check.CreatedAt); err != nil {
			logger.SafeErrorContext(ctx, "error scanning fact check row", "error", err)
			return nil, errors.New("error scanning fact checks")
		}
		checks = append(checks, check)
	}
	if err := rows.Err(); err != nil {
		logger.SafeErrorContext(ctx, "error iterating fact check rows", "error", err)
		return nil, errors.New("error processing fact checks")
	}

	return checks, nil
}

func (r *FactnetDBRepository) fetchUserFeedback(ctx context.Context, articleID any) ([]domain.FeedbackEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_name, vote, created_at
		FROM user_feedback
		WHERE article_id = $1
		ORDER BY created_at ASC
	`, articleID)
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching user feedback", "error", err)
		return nil, errors.New("error fetching user feedback")
	}
	defer rows.Close()

	var entries []domain.FeedbackEntry
	for rows.Next() {
		var entry domain.FeedbackEntry
		if err := rows.Scan(&entry.User, &entry.Vote, &entry.CreatedAt); err != nil {
			logger.SafeErrorContext(ctx, "error scanning user feedback row", "error", err)
			return nil, errors.New("error scanning user feedback")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		logger.SafeErrorContext(ctx, "error iterating user feedback rows", "error", err)
		return nil, errors.New("error processing user feedback")
	}

	return entries, nil
}
