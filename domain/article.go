package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is a news item under fact-check review. ArticleID is the
// externally visible identifier; ID is the storage key and never crosses
// the API boundary.
type Article struct {
	ID             uuid.UUID       `json:"-"`
	ArticleID      string          `json:"article_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	URL            string          `json:"url"`
	Source         string          `json:"source"`
	Language       string          `json:"language"`
	Category       string          `json:"category"`
	PublishedDate  time.Time       `json:"published_date"`
	CreatedAt      time.Time       `json:"created_at"`
	FactCheckScore int             `json:"fact_check_score"`
	Upvotes        int             `json:"upvotes"`
	Downvotes      int             `json:"downvotes"`
	Verified       bool            `json:"verified"`
	VerifiedBy     *string         `json:"verified_by,omitempty"`
	VerifiedAt     *time.Time      `json:"verified_at,omitempty"`
	FactChecks     []FactCheck     `json:"fact_checks,omitempty"`
	UserFeedback   []FeedbackEntry `json:"user_feedback,omitempty"`
}

// FactCheck is a single review attached to an article.
type FactCheck struct {
	Reviewer  string    `json:"reviewer"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	Evidence  []string  `json:"evidence"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackEntry is a recorded user vote. The unauthenticated feedback
// endpoint increments counters without appending here; entries only exist
// for votes recorded through attributed paths.
type FeedbackEntry struct {
	User      string    `json:"user"`
	Vote      VoteType  `json:"vote"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteCounts is the counter pair returned after a feedback vote.
type VoteCounts struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// DashboardStats is the admin dashboard overview aggregate.
type DashboardStats struct {
	TotalArticles         int     `json:"total_articles"`
	VerifiedArticles      int     `json:"verified_articles"`
	AverageFactCheckScore float64 `json:"average_fact_check_score"`
	PendingValidation     int     `json:"pending_validation"`
}
