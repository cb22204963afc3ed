package driven

import (
	"context"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

// IssueSink stores raw issues, for example as an offline dump.
type IssueSink interface {
	WriteIssues(ctx context.Context, issues []domain.RawIssue) error
}
