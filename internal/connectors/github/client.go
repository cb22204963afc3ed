package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// userAgent identifies issueblog to the GitHub API.
	userAgent = "issueblog"
)

// Option configures a Client.
type Option func(*Client)

// WithRateLimiter replaces the default rate limiter.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) { c.rateLimiter = r }
}

// Client wraps the go-github client with rate limiting and error mapping.
// It is safe for concurrent use.
type Client struct {
	mu            sync.Mutex
	gh            *gh.Client
	cfg           *Config
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
}

// NewClient creates a new GitHub API client for the configured repository.
func NewClient(cfg *Config, tokenProvider driven.TokenProvider, opts ...Option) *Client {
	c := &Client{
		cfg:           cfg,
		tokenProvider: tokenProvider,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rateLimiter == nil {
		c.rateLimiter = NewRateLimiter(tokenProvider.AuthMethod())
	}
	return c
}

// ensureClient initializes the go-github client if not already done.
// This is called lazily so we can get the token when needed.
func (c *Client) ensureClient(ctx context.Context) (*gh.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gh != nil {
		return c.gh, nil
	}

	var httpClient *http.Client
	if c.tokenProvider.AuthMethod() == domain.AuthMethodNone {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	} else {
		token, err := c.tokenProvider.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("get token: %w", err)
		}
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
		httpClient.Timeout = DefaultTimeout
	}

	client := gh.NewClient(httpClient)
	client.UserAgent = userAgent
	base, err := c.cfg.baseURL()
	if err != nil {
		return nil, err
	}
	if base != nil {
		client.BaseURL = base
	}

	c.gh = client
	return c.gh, nil
}

// ListIssuesPage fetches a single page of repository issues.
func (c *Client) ListIssuesPage(ctx context.Context, opts *gh.IssueListByRepoOptions) ([]*gh.Issue, error) {
	client, err := c.ensureClient(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	issues, resp, err := client.Issues.ListByRepo(ctx, c.cfg.Owner, c.cfg.Repo, opts)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, c.wrapError(err, "list issues")
	}
	return issues, nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		resetAt := time.Now()
		if retry := abuseErr.GetRetryAfter(); retry > 0 {
			resetAt = resetAt.Add(retry)
		}
		return &RateLimitError{ResetAt: resetAt}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w: %w", operation, domain.ErrSourceUnavailable, err)
}
