// Package cms talks to the headless CMS that feeds the site. It issues
// GraphQL queries over HTTP and returns raw content nodes; shaping them for
// display is left to package catalog.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a single-item query matches nothing.
var ErrNotFound = errors.New("cms: not found")

// QueryError is returned when the endpoint answers with GraphQL errors.
type QueryError struct {
	Messages []string
}

func (e *QueryError) Error() string {
	if len(e.Messages) == 0 {
		return "cms: query failed"
	}
	return "cms: query failed: " + strings.Join(e.Messages, "; ")
}

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 8 << 20
)

// Options configures a Client.
type Options struct {
	Endpoint   string
	HTTPClient *http.Client
	Logger     *zap.Logger
	// Timeout bounds each query. Zero means 10s.
	Timeout time.Duration
}

// Client is a GraphQL client for the CMS. It is safe for concurrent use.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
	timeout    time.Duration
}

// New returns a client for opts.Endpoint.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   strings.TrimSpace(opts.Endpoint),
		httpClient: httpClient,
		logger:     logger,
		timeout:    timeout,
	}
}

// Endpoint returns the GraphQL endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Do runs query with vars and decodes the response's data member into out.
// A non-2xx status or a non-empty errors member is an error.
func (c *Client) Do(ctx context.Context, query string, vars map[string]any, out any) error {
	if c.endpoint == "" {
		return errors.New("cms: no endpoint configured")
	}
	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("cms: marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("cms: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cms: request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("cms: read response: %w", err)
	}
	c.logger.Debug("cms query",
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
		zap.Int("bytes", len(raw)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("cms: %s: %s", resp.Status, truncate(strings.TrimSpace(string(raw)), 200))
	}

	var decoded response
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("cms: decode response: %w", err)
	}
	if len(decoded.Errors) > 0 {
		qe := &QueryError{}
		for _, e := range decoded.Errors {
			qe.Messages = append(qe.Messages, e.Message)
		}
		return qe
	}
	if out == nil || len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(decoded.Data, out); err != nil {
		return fmt.Errorf("cms: decode data: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// PostsByCategory lists up to count posts in the named category, newest
// first.
func (c *Client) PostsByCategory(ctx context.Context, category string, count int) ([]Node, error) {
	var data postsData
	err := c.Do(ctx, postsByCategoryQuery, map[string]any{
		"categoryName": category,
		"count":        count,
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("cms: posts in %q: %w", category, err)
	}
	return data.Posts.nodes(), nil
}

// PostBySlug fetches a single post. It returns ErrNotFound when no post has
// that slug.
func (c *Client) PostBySlug(ctx context.Context, slug string) (Node, error) {
	var data postsData
	if err := c.Do(ctx, postBySlugQuery, map[string]any{"slug": slug}, &data); err != nil {
		return Node{}, fmt.Errorf("cms: post %q: %w", slug, err)
	}
	nodes := data.Posts.nodes()
	if len(nodes) == 0 {
		return Node{}, ErrNotFound
	}
	return nodes[0], nil
}

// Certificate looks up the certificate post whose slug is number within
// category. Numbers are matched case-insensitively.
func (c *Client) Certificate(ctx context.Context, category, number string) (Node, error) {
	slug := strings.ToLower(strings.TrimSpace(number))
	if slug == "" {
		return Node{}, ErrNotFound
	}
	var data postsData
	err := c.Do(ctx, certificateQuery, map[string]any{
		"slug":         slug,
		"categoryName": category,
	}, &data)
	if err != nil {
		return Node{}, fmt.Errorf("cms: certificate %q: %w", slug, err)
	}
	nodes := data.Posts.nodes()
	if len(nodes) == 0 {
		return Node{}, ErrNotFound
	}
	return nodes[0], nil
}

// PostContent returns the HTML body of the post with the given slug. It is
// used for fixed-slug posts that act as image galleries.
func (c *Client) PostContent(ctx context.Context, slug string) (string, error) {
	var data struct {
		Post *struct {
			Content string `json:"content"`
		} `json:"post"`
	}
	if err := c.Do(ctx, postContentQuery, map[string]any{"slug": slug}, &data); err != nil {
		return "", fmt.Errorf("cms: content of %q: %w", slug, err)
	}
	if data.Post == nil {
		return "", ErrNotFound
	}
	return data.Post.Content, nil
}
