package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
	"github.com/custodia-labs/issueblog/internal/core/ports/driving"
	"github.com/custodia-labs/issueblog/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService dumps labelled issues so they can be served offline.
type ExportService struct {
	source   driven.IssueSource
	label    string
	maxPages int
}

// NewExportService creates a new export service.
func NewExportService(source driven.IssueSource, settings *domain.Settings) *ExportService {
	s := &ExportService{
		source:   source,
		label:    domain.DefaultLabel,
		maxPages: domain.DefaultMaxPages,
	}
	if settings != nil {
		if settings.Label != "" {
			s.label = settings.Label
		}
		if settings.MaxPages > 0 {
			s.maxPages = settings.MaxPages
		}
	}
	return s
}

// Export fetches every page of labelled issues and writes them to sink.
// Pull requests are skipped.
func (s *ExportService) Export(ctx context.Context, sink driven.IssueSink) (int, error) {
	logger.Section("Export")

	var issues []domain.RawIssue
	for page := 1; page <= s.maxPages; page++ {
		batch, err := s.source.ListIssues(ctx, driven.IssueQuery{
			Label:   s.label,
			State:   driven.IssueStateOpen,
			Page:    page,
			PerPage: domain.MaxPageSize,
		})
		if err != nil {
			return 0, fmt.Errorf("fetch issues page %d: %w", page, err)
		}
		for _, issue := range batch {
			if !issue.IsPullRequest() {
				issues = append(issues, issue)
			}
		}
		logger.Debug("Page %d: %d issues", page, len(batch))
		if len(batch) < domain.MaxPageSize {
			break
		}
	}

	if err := sink.WriteIssues(ctx, issues); err != nil {
		return 0, fmt.Errorf("write issues: %w", err)
	}
	logger.Info("Exported %d issues", len(issues))
	return len(issues), nil
}
