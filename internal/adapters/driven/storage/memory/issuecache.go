package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
)

// Ensure IssueCache implements the interface.
var _ driven.IssueCache = (*IssueCache)(nil)

type cachedPage struct {
	issues   []domain.RawIssue
	storedAt time.Time
}

// IssueCache keeps fetched issue pages in memory for the life of the
// process.
type IssueCache struct {
	mu    sync.RWMutex
	pages map[string]cachedPage
}

// NewIssueCache creates a new in-memory issue cache.
func NewIssueCache() *IssueCache {
	return &IssueCache{
		pages: make(map[string]cachedPage),
	}
}

// Get returns the page stored under key.
func (c *IssueCache) Get(_ context.Context, key string) ([]domain.RawIssue, time.Time, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	page, ok := c.pages[key]
	if !ok {
		return nil, time.Time{}, false, nil
	}
	return cloneIssues(page.issues), page.storedAt, true, nil
}

// Put stores a page under key, replacing any previous page.
func (c *IssueCache) Put(_ context.Context, key string, issues []domain.RawIssue, storedAt time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[key] = cachedPage{issues: cloneIssues(issues), storedAt: storedAt}
	return nil
}

// Purge removes every cached page.
func (c *IssueCache) Purge(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.pages)
	return nil
}

// Len returns the number of cached pages.
func (c *IssueCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// cloneIssues copies issues so callers cannot modify cached pages.
func cloneIssues(issues []domain.RawIssue) []domain.RawIssue {
	out := make([]domain.RawIssue, len(issues))
	for i, issue := range issues {
		issue.Labels = slices.Clone(issue.Labels)
		out[i] = issue
	}
	return out
}
