package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

func TestExportService_Export(t *testing.T) {
	pr := issueWithBody(300, "pr")
	pr.PullRequest = &domain.PullRequestRef{URL: "https://api.github.com/repos/o/r/pulls/300"}
	first := append([]domain.RawIssue{pr}, fullPage(299, 99)...)
	source := newMockIssueSource(first, fullPage(200, 5))
	sink := &mockIssueSink{}
	s := NewExportService(source, nil)

	n, err := s.Export(context.Background(), sink)

	require.NoError(t, err)
	assert.Equal(t, 104, n)
	assert.Len(t, sink.issues, 104)
	assert.Equal(t, 299, sink.issues[0].Number)
	assert.Len(t, source.calls(), 2)
}

func TestExportService_Export_UsesLabel(t *testing.T) {
	source := newMockIssueSource()
	settings := domain.DefaultSettings()
	settings.Label = "post"
	s := NewExportService(source, &settings)

	n, err := s.Export(context.Background(), &mockIssueSink{})

	require.NoError(t, err)
	assert.Zero(t, n)
	require.Len(t, source.calls(), 1)
	assert.Equal(t, "post", source.calls()[0].Label)
}

func TestExportService_Export_SourceFailure(t *testing.T) {
	source := newMockIssueSource()
	source.err = domain.ErrRateLimited
	sink := &mockIssueSink{}
	s := NewExportService(source, nil)

	_, err := s.Export(context.Background(), sink)

	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Empty(t, sink.issues)
}

func TestExportService_Export_SinkFailure(t *testing.T) {
	source := newMockIssueSource([]domain.RawIssue{issueWithBody(1, "x")})
	sinkErr := errors.New("disk full")
	s := NewExportService(source, nil)

	_, err := s.Export(context.Background(), &mockIssueSink{err: sinkErr})

	assert.ErrorIs(t, err, sinkErr)
}
