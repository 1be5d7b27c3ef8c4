package client

// MaxPageButtons is the number of page-number buttons shown at once.
const MaxPageButtons = 5

// PageWindow computes the window of page numbers to display around
// currentPage. The window holds at most maxButtons pages, stays within
// [1, totalPages], and hugs the edges rather than shrinking: near the start
// or end of the range it still shows maxButtons pages when enough exist.
// An empty result means there is nothing to paginate.
func PageWindow(currentPage, totalPages, maxButtons int) []int {
	if totalPages < 1 || maxButtons < 1 {
		return nil
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	start := currentPage - maxButtons/2
	if start < 1 {
		start = 1
	}
	end := start + maxButtons - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start+1 < maxButtons {
		start = end - maxButtons + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// ClampPage returns page bounded to [1, totalPages]. Out-of-range page
// changes are treated as no-ops by callers comparing the result with the
// current page. A totalPages of 0 clamps everything to 1.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}
