package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
	"github.com/custodia-labs/issueblog/internal/logger"
)

// Ensure Source implements the interfaces.
var (
	_ driven.IssueSource = (*Source)(nil)
	_ driven.IssueSink   = (*Source)(nil)
)

// ErrClosed is returned when the source has been closed.
var ErrClosed = errors.New("filesystem: source closed")

const dumpExt = ".json"

// Source reads and writes issue dumps in a directory.
type Source struct {
	root string

	mu     sync.Mutex
	closed bool
	cancel []context.CancelFunc
}

// New creates a source rooted at dir.
func New(dir string) *Source {
	return &Source{root: dir}
}

// Root returns the dump directory.
func (s *Source) Root() string {
	return s.root
}

// Validate checks that the dump directory exists.
func (s *Source) Validate() error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path error: %s is not a directory", s.root)
	}
	return nil
}

// ListIssues returns one page of dumped issues carrying the query label,
// newest first.
func (s *Source) ListIssues(ctx context.Context, q driven.IssueQuery) ([]domain.RawIssue, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}

	all, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.RawIssue, 0, len(all))
	for _, issue := range all {
		if matchesQuery(&issue, q) {
			matched = append(matched, issue)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Number > b.Number
	})

	return paginate(matched, q.Page, q.PerPage), nil
}

// WriteIssues writes each issue to <number>.json in the dump directory.
func (s *Source) WriteIssues(ctx context.Context, issues []domain.RawIssue) error {
	if s.isClosed() {
		return ErrClosed
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create dump directory: %w", err)
	}

	for i := range issues {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := json.MarshalIndent(&issues[i], "", "  ")
		if err != nil {
			return fmt.Errorf("encode issue %d: %w", issues[i].Number, err)
		}
		name := filepath.Join(s.root, fmt.Sprintf("%d%s", issues[i].Number, dumpExt))
		if err := os.WriteFile(name, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write issue %d: %w", issues[i].Number, err)
		}
	}
	return nil
}

// Close stops all watches. It is idempotent.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for _, cancel := range s.cancel {
		cancel()
	}
	s.cancel = nil
	return nil
}

func (s *Source) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// readAll decodes every dump file. Unreadable files are skipped with a
// warning so one bad file does not hide the rest of the blog.
func (s *Source) readAll(ctx context.Context) ([]domain.RawIssue, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("%w: read dump directory: %w", domain.ErrSourceUnavailable, err)
	}

	var issues []domain.RawIssue
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !isDumpFile(entry.Name()) {
			continue
		}
		path := filepath.Join(s.root, entry.Name())
		decoded, err := readDumpFile(path)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			continue
		}
		issues = append(issues, decoded...)
	}
	return issues, nil
}

// readDumpFile decodes a file holding one issue or an array of issues.
func readDumpFile(path string) ([]domain.RawIssue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var issues []domain.RawIssue
		if err := json.Unmarshal(data, &issues); err != nil {
			return nil, fmt.Errorf("decode issues: %w", err)
		}
		return issues, nil
	}
	var issue domain.RawIssue
	if err := json.Unmarshal(data, &issue); err != nil {
		return nil, fmt.Errorf("decode issue: %w", err)
	}
	return []domain.RawIssue{issue}, nil
}

func matchesQuery(issue *domain.RawIssue, q driven.IssueQuery) bool {
	if q.Label != "" && !hasLabelFold(issue, q.Label) {
		return false
	}
	switch q.State {
	case "", driven.IssueStateOpen:
		return issue.State == "" || issue.State == driven.IssueStateOpen
	case driven.IssueStateAll:
		return true
	default:
		return issue.State == q.State
	}
}

// hasLabelFold matches labels case-insensitively, as GitHub does.
func hasLabelFold(issue *domain.RawIssue, name string) bool {
	for _, l := range issue.Labels {
		if strings.EqualFold(l.Name, name) {
			return true
		}
	}
	return false
}

func paginate(issues []domain.RawIssue, page, perPage int) []domain.RawIssue {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = domain.DefaultPageSize
	}
	start := (page - 1) * perPage
	if start >= len(issues) {
		return []domain.RawIssue{}
	}
	end := min(start+perPage, len(issues))
	return issues[start:end]
}

// isDumpFile reports whether name is a visible JSON file.
func isDumpFile(name string) bool {
	return !strings.HasPrefix(name, ".") && strings.EqualFold(filepath.Ext(name), dumpExt)
}
