package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

const (
	// AuthenticatedLimit is the hourly quota with a token.
	AuthenticatedLimit = 5000

	// AnonymousLimit is the hourly quota without a token.
	AnonymousLimit = 60

	// ProactiveRate is the proactive throttle rate (~1.2 req/sec = 4320/hr).
	ProactiveRate = 1.2

	// ProactiveBurst lets a slug lookup walk several pages without waiting.
	ProactiveBurst = 10

	// HeaderRateLimit is the rate limit header.
	HeaderRateLimit = "X-RateLimit-Limit"

	// HeaderRateRemaining is the remaining requests header.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRateReset is the reset timestamp header (Unix seconds).
	HeaderRateReset = "X-RateLimit-Reset"
)

// RateLimiter throttles GitHub requests. It spaces requests with a token
// bucket and refuses to call the API once the quota reported by the last
// response is spent, until the reset time passes.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int           // From API header
	limit     int           // From API header
	resetTime time.Time     // From API header
	bucket    *rate.Limiter // Proactive throttling
	now       func() time.Time
}

// NewRateLimiter creates a rate limiter sized for the auth method.
func NewRateLimiter(method domain.AuthMethod) *RateLimiter {
	limit := AuthenticatedLimit
	if method == domain.AuthMethodNone {
		limit = AnonymousLimit
	}
	r := NewRateLimiterWithRate(rate.Limit(ProactiveRate), ProactiveBurst)
	r.remaining = limit
	r.limit = limit
	return r
}

// NewRateLimiterWithRate creates a rate limiter with a custom proactive
// rate. rate.Inf disables throttling.
func NewRateLimiterWithRate(r rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		remaining: AuthenticatedLimit,
		limit:     AuthenticatedLimit,
		bucket:    rate.NewLimiter(r, burst),
		now:       time.Now,
	}
}

// Wait blocks until the next request may be sent. It returns a
// RateLimitError without waiting when the quota is exhausted.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.remaining <= 0 && r.now().Before(r.resetTime) {
		return &RateLimitError{
			ResetAt:   r.resetTime,
			Remaining: r.remaining,
			Limit:     r.limit,
		}
	}
	return nil
}

// UpdateFromResponse updates rate limit state from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining := resp.Header.Get(HeaderRateRemaining); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			r.remaining = val
		}
	}
	if limit := resp.Header.Get(HeaderRateLimit); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			r.limit = val
		}
	}
	if reset := resp.Header.Get(HeaderRateReset); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil {
			r.resetTime = time.Unix(val, 0)
		}
	}
}

// Remaining returns the current remaining requests.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// Limit returns the rate limit.
func (r *RateLimiter) Limit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}

// ResetTime returns the rate limit reset time.
func (r *RateLimiter) ResetTime() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetTime
}
