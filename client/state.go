package client

import (
	"context"
	"sync"

	"factnet/domain"
)

// ListView holds the filter state of an article list and the most recent
// result. Filter changes and fetches can overlap: each fetch is tagged with
// a sequence number, and responses that arrive after a newer fetch started
// are dropped so the view never shows results for stale filters.
type ListView struct {
	mu      sync.Mutex
	opts    ListOptions
	seq     uint64
	applied uint64
	result  *domain.ArticleList

	client *Client
}

// NewListView creates a view over the given client with the given initial
// filter state.
func NewListView(c *Client, opts ListOptions) *ListView {
	if opts.Page < 1 {
		opts.Page = domain.DefaultPage
	}
	if opts.Limit < 1 {
		opts.Limit = domain.DefaultLimit
	}
	return &ListView{opts: opts, client: c}
}

// Options returns the current filter state.
func (v *ListView) Options() ListOptions {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.opts
}

// Result returns the last applied fetch result, or nil before the first one.
func (v *ListView) Result() *domain.ArticleList {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result
}

// SetFilter updates the filter state through fn and resets to the first
// page, since the old page number is meaningless under a new filter.
func (v *ListView) SetFilter(fn func(*ListOptions)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(&v.opts)
	v.opts.Page = domain.DefaultPage
}

// SetPage moves to the given page. Out-of-range pages clamp against the
// last known totalPages; it reports whether the page actually changed.
func (v *ListView) SetPage(page int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	totalPages := 0
	if v.result != nil {
		totalPages = v.result.TotalPages
	}
	clamped := ClampPage(page, totalPages)
	if clamped == v.opts.Page {
		return false
	}
	v.opts.Page = clamped
	return true
}

// Fetch issues the list query for the current state and applies the result
// unless a newer Fetch has started in the meantime. It returns the fetched
// list even when it was too stale to apply.
func (v *ListView) Fetch(ctx context.Context) (*domain.ArticleList, error) {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	opts := v.opts
	v.mu.Unlock()

	list, err := v.client.GetArticles(ctx, opts)
	if err != nil {
		return nil, err
	}

	v.apply(seq, list)
	return list, nil
}

func (v *ListView) apply(seq uint64, list *domain.ArticleList) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if seq < v.seq || seq <= v.applied {
		return
	}
	v.applied = seq
	v.result = list

	// The server normalizes invalid page values; keep the local page in
	// step with what was actually served.
	if list.CurrentPage > 0 {
		v.opts.Page = list.CurrentPage
	}
}

// PageWindow returns the page buttons to render for the current result.
func (v *ListView) PageWindow() []int {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.result == nil {
		return nil
	}
	return PageWindow(v.opts.Page, v.result.TotalPages, MaxPageButtons)
}
