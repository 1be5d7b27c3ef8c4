package domain

import "time"

const (
	DefaultPage  = 1
	DefaultLimit = 10

	// CategoryAll is a client-side sentinel meaning "no category filter".
	CategoryAll = "all"

	SortNewest = "newest"
)

// ArticleQuery is the recognized set of listing options shared between the
// client and the store. Zero values mean "absent"; Normalize coerces page
// and limit to their defaults instead of rejecting them.
type ArticleQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
	Sort     string
	From     *time.Time
	To       *time.Time
	Verified *bool
	Source   string
}

// Normalize returns a copy with page/limit defaulted and the "all" category
// sentinel cleared. No further validation is performed.
func (q ArticleQuery) Normalize() ArticleQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Category == CategoryAll {
		q.Category = ""
	}
	return q
}

// Offset is the number of rows skipped for the current page.
func (q ArticleQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ArticleList is the paginated listing result.
type ArticleList struct {
	Articles      []*Article `json:"articles"`
	CurrentPage   int        `json:"currentPage"`
	TotalPages    int        `json:"totalPages"`
	TotalArticles int        `json:"totalArticles"`
}
