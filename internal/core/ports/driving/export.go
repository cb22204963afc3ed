package driving

import (
	"context"

	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
)

// ExportService copies the labelled issues out of the tracker.
type ExportService interface {
	// Export writes every labelled issue to sink and returns how many were
	// written. Unlike post listing, tracker failures are returned.
	Export(ctx context.Context, sink driven.IssueSink) (int, error)
}
