package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

// IssueCache stores fetched issue pages for a bounded reuse window.
type IssueCache interface {
	// Get returns the cached page for key and when it was stored.
	// The boolean is false when nothing is cached under key.
	Get(ctx context.Context, key string) ([]domain.RawIssue, time.Time, bool, error)

	// Put stores a page under key.
	Put(ctx context.Context, key string, issues []domain.RawIssue, storedAt time.Time) error

	// Purge removes every cached page.
	Purge(ctx context.Context) error
}
