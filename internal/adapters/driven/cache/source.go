// Package cache provides a caching decorator for issue sources.
//
// A fetched page is reused for a fixed window so that bursts of requests
// hit the issue tracker once. Pages are stored in a [driven.IssueCache]
// backend: in memory for a single process or in SQLite so the window
// survives restarts and is shared between CLI invocations.
package cache

import (
	"context"
	"time"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
	"github.com/custodia-labs/issueblog/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.IssueSource = (*Source)(nil)

// Source wraps an issue source with a TTL cache.
type Source struct {
	next  driven.IssueSource
	store driven.IssueCache
	ttl   time.Duration
	now   func() time.Time
}

// NewSource wraps next so that pages are reused for ttl.
func NewSource(next driven.IssueSource, store driven.IssueCache, ttl time.Duration) *Source {
	return &Source{
		next:  next,
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// SetClock replaces the clock used for expiry checks.
func (s *Source) SetClock(now func() time.Time) {
	s.now = now
}

// ListIssues returns the cached page for q when it is younger than the
// TTL, otherwise it fetches and stores a fresh page. Failed fetches and
// empty pages are not cached.
func (s *Source) ListIssues(ctx context.Context, q driven.IssueQuery) ([]domain.RawIssue, error) {
	key := q.Key()

	if s.ttl > 0 {
		issues, storedAt, ok, err := s.store.Get(ctx, key)
		switch {
		case err != nil:
			logger.Warn("Cache read failed for %s: %v", key, err)
		case ok && s.now().Sub(storedAt) < s.ttl:
			logger.Debug("Cache hit: %s (%d issues)", key, len(issues))
			return issues, nil
		}
	}

	logger.Debug("Cache miss: %s", key)
	issues, err := s.next.ListIssues(ctx, q)
	if err != nil {
		return nil, err
	}

	if s.ttl > 0 && len(issues) > 0 {
		if err := s.store.Put(ctx, key, issues, s.now()); err != nil {
			logger.Warn("Cache write failed for %s: %v", key, err)
		}
	}
	return issues, nil
}

// Invalidate drops every cached page.
func (s *Source) Invalidate(ctx context.Context) error {
	logger.Debug("Cache invalidated")
	return s.store.Purge(ctx)
}
