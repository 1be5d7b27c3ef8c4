package factnet_db

import (
	"fmt"
	"strings"

	"factnet/domain"
)

// buildArticleFilter translates the recognized listing options into a SQL
// WHERE clause and its positional arguments. The query is expected to be
// normalized already; an empty clause means no filtering.
func buildArticleFilter(q domain.ArticleQuery) (string, []any) {
	var conditions []string
	var args []any

	next := func() string {
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Category != "" {
		args = append(args, q.Category)
		conditions = append(conditions, "category = "+next())
	}

	if q.Search != "" {
		args = append(args, "%"+escapeLike(q.Search)+"%")
		placeholder := next()
		conditions = append(conditions,
			"(title ILIKE "+placeholder+" OR description ILIKE "+placeholder+")")
	}

	if q.From != nil {
		args = append(args, *q.From)
		conditions = append(conditions, "published_date >= "+next())
	}

	if q.To != nil {
		args = append(args, *q.To)
		conditions = append(conditions, "published_date <= "+next())
	}

	if q.Verified != nil {
		args = append(args, *q.Verified)
		conditions = append(conditions, "verified = "+next())
	}

	if q.Source != "" {
		args = append(args, q.Source)
		conditions = append(conditions, "source = "+next())
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// articleOrderBy maps the sort option to an ORDER BY clause. The secondary
// id key keeps offset pagination deterministic for equal published dates.
func articleOrderBy(sort string) string {
	switch sort {
	case domain.SortNewest, "":
		return "ORDER BY published_date DESC, id DESC"
	default:
		return "ORDER BY published_date DESC, id DESC"
	}
}

// escapeLike escapes the LIKE metacharacters so a search term is matched
// as a literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
