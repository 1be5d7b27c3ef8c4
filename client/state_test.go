package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factnet/domain"
)

func listServer(t *testing.T, totalArticles int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit < 1 {
			limit = domain.DefaultLimit
		}
		totalPages := 0
		if totalArticles > 0 {
			totalPages = (totalArticles + limit - 1) / limit
		}
		json.NewEncoder(w).Encode(domain.ArticleList{
			Articles:      []*domain.Article{},
			CurrentPage:   page,
			TotalPages:    totalPages,
			TotalArticles: totalArticles,
		})
	}))
}

func TestListView_FetchAppliesResult(t *testing.T) {
	srv := listServer(t, 42)
	defer srv.Close()

	view := NewListView(New(srv.URL), ListOptions{})
	list, err := view.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, list.TotalPages)
	assert.Equal(t, list, view.Result())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, view.PageWindow())
}

func TestListView_SetFilterResetsPage(t *testing.T) {
	srv := listServer(t, 42)
	defer srv.Close()

	view := NewListView(New(srv.URL), ListOptions{Page: 4})
	view.SetFilter(func(o *ListOptions) {
		o.Category = "Health"
	})

	opts := view.Options()
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, "Health", opts.Category)
}

func TestListView_SetPageClampsAgainstKnownTotal(t *testing.T) {
	srv := listServer(t, 42)
	defer srv.Close()

	view := NewListView(New(srv.URL), ListOptions{})
	_, err := view.Fetch(context.Background())
	require.NoError(t, err)

	assert.True(t, view.SetPage(3))
	assert.Equal(t, 3, view.Options().Page)

	// Out of range clamps to the last page.
	assert.True(t, view.SetPage(99))
	assert.Equal(t, 5, view.Options().Page)

	// Clicking the current page again is a no-op.
	assert.False(t, view.SetPage(5))
}

func TestListView_StaleResponseIsDropped(t *testing.T) {
	srv := listServer(t, 42)
	defer srv.Close()

	view := NewListView(New(srv.URL), ListOptions{})

	// Take a sequence slot as if a fetch had started, then complete a newer
	// fetch before it resolves.
	view.mu.Lock()
	view.seq++
	staleSeq := view.seq
	view.mu.Unlock()

	fresh, err := view.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, view.Result())

	// The stale response arrives late; the applied result must not change.
	view.apply(staleSeq, &domain.ArticleList{TotalArticles: 1, TotalPages: 1, CurrentPage: 1})
	assert.Equal(t, fresh, view.Result())
	assert.Equal(t, 42, view.Result().TotalArticles)
}

func TestListView_ConcurrentFetches(t *testing.T) {
	srv := listServer(t, 42)
	defer srv.Close()

	view := NewListView(New(srv.URL), ListOptions{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := view.Fetch(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.NotNil(t, view.Result())
	assert.Equal(t, 42, view.Result().TotalArticles)
}
