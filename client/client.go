// Package client is a Go client for the factnet REST API, plus the
// presentation helpers (score tiers, pagination windows, bookmarks) used by
// factnetctl.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"factnet/domain"
)

// DefaultTimeout bounds every API request issued by the client.
const DefaultTimeout = 15 * time.Second

// Client talks to a factnet server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the server at baseURL, e.g. "http://localhost:5000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListOptions mirrors the query parameters of the article list endpoint.
// Zero values are omitted from the request so the server applies its
// defaults.
type ListOptions struct {
	Page     int
	Limit    int
	Category string
	Search   string
	Sort     string
	From     string
	To       string
	Verified *bool
	Source   string
}

// Values encodes the options as URL query parameters. The "all" category is
// treated the same as no category at all.
func (o ListOptions) Values() url.Values {
	v := url.Values{}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Category != "" && o.Category != domain.CategoryAll {
		v.Set("category", o.Category)
	}
	if o.Search != "" {
		v.Set("search", o.Search)
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	if o.From != "" {
		v.Set("from", o.From)
	}
	if o.To != "" {
		v.Set("to", o.To)
	}
	if o.Verified != nil {
		v.Set("verified", strconv.FormatBool(*o.Verified))
	}
	if o.Source != "" {
		v.Set("source", o.Source)
	}
	return v
}

// FeedbackResult is the response of a successful feedback submission.
type FeedbackResult struct {
	Message   string `json:"message"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// GetArticles fetches one page of articles.
func (c *Client) GetArticles(ctx context.Context, opts ListOptions) (*domain.ArticleList, error) {
	endpoint := c.baseURL + "/v1/articles"
	if query := opts.Values().Encode(); query != "" {
		endpoint += "?" + query
	}

	var list domain.ArticleList
	if err := c.get(ctx, endpoint, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetArticleByID fetches a single article with its fact checks and feedback.
func (c *Client) GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	if articleID == "" {
		return nil, fmt.Errorf("article id is required")
	}

	endpoint := c.baseURL + "/v1/articles/" + url.PathEscape(articleID)

	var article domain.Article
	if err := c.get(ctx, endpoint, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// SubmitFeedback records an upvote or downvote and returns the updated
// counters.
func (c *Client) SubmitFeedback(ctx context.Context, articleID string, vote domain.VoteType) (*FeedbackResult, error) {
	if articleID == "" {
		return nil, fmt.Errorf("article id is required")
	}

	endpoint := c.baseURL + "/v1/articles/" + url.PathEscape(articleID) + "/feedback"

	body, err := json.Marshal(map[string]string{"vote": string(vote)})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var result FeedbackResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDashboardStats fetches the aggregate counters shown on the admin
// dashboard.
func (c *Client) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.get(ctx, c.baseURL+"/v1/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}
