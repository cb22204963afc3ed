package driven

import (
	"context"
	"fmt"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

// Issue states understood by IssueQuery.
const (
	IssueStateOpen   = "open"
	IssueStateClosed = "closed"
	IssueStateAll    = "all"
)

// IssueQuery selects one page of issues.
type IssueQuery struct {
	// Label is the marker label issues must carry.
	Label string

	// State filters issues by state. Defaults to open.
	State string

	// Page is the 1-based page number.
	Page int

	// PerPage is the page size.
	PerPage int
}

// Key returns a stable identifier for the query, used as a cache key.
func (q IssueQuery) Key() string {
	return fmt.Sprintf("issues:%s:%s:%d:%d", q.Label, q.State, q.Page, q.PerPage)
}

// IssueSource lists issues from the issue tracker.
// Implementations own authentication, rate limiting and transport.
type IssueSource interface {
	// ListIssues returns one page of issues carrying the query label,
	// ordered newest first. Pull requests may be included; callers
	// filter them with RawIssue.IsPullRequest.
	ListIssues(ctx context.Context, q IssueQuery) ([]domain.RawIssue, error)
}
