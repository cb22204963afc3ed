package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
)

// mockIssueSource serves fixed pages of issues and records every query.
type mockIssueSource struct {
	mu      sync.Mutex
	pages   map[int][]domain.RawIssue
	err     error
	queries []driven.IssueQuery
}

func newMockIssueSource(pages ...[]domain.RawIssue) *mockIssueSource {
	m := &mockIssueSource{pages: make(map[int][]domain.RawIssue)}
	for i, p := range pages {
		m.pages[i+1] = p
	}
	return m
}

func (m *mockIssueSource) ListIssues(_ context.Context, q driven.IssueQuery) ([]domain.RawIssue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, q)
	if m.err != nil {
		return nil, m.err
	}
	return m.pages[q.Page], nil
}

func (m *mockIssueSource) calls() []driven.IssueQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]driven.IssueQuery(nil), m.queries...)
}

// mockIssueSink records written issues.
type mockIssueSink struct {
	issues []domain.RawIssue
	err    error
}

func (m *mockIssueSink) WriteIssues(_ context.Context, issues []domain.RawIssue) error {
	if m.err != nil {
		return m.err
	}
	m.issues = append(m.issues, issues...)
	return nil
}

var testTime = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// issueWithBody builds a labelled issue.
func issueWithBody(number int, body string) domain.RawIssue {
	return domain.RawIssue{
		ID:        int64(number),
		Number:    number,
		Title:     fmt.Sprintf("Issue %d", number),
		Body:      body,
		State:     "open",
		CreatedAt: testTime,
		UpdatedAt: testTime.Add(time.Duration(number) * time.Hour),
		Labels:    []domain.Label{{Name: "blog"}},
	}
}

// langIssue builds an issue whose front-matter declares slug and lang.
func langIssue(number int, slug string, lang domain.Locale) domain.RawIssue {
	return issueWithBody(number, fmt.Sprintf("---\nslug: %s\nlang: %s\n---\nBody of %s", slug, lang, slug))
}

// fullPage builds a page of n issues in the default locale numbered from start downwards.
func fullPage(start, n int) []domain.RawIssue {
	page := make([]domain.RawIssue, n)
	for i := range page {
		num := start - i
		page[i] = langIssue(num, fmt.Sprintf("post-%d", num), domain.LocaleZH)
	}
	return page
}
