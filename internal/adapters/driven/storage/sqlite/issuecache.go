package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
)

// Ensure issueCache implements the interface.
var _ driven.IssueCache = (*issueCache)(nil)

// issueCache stores issue pages as JSON rows keyed by query.
type issueCache struct {
	store *Store
}

// Get returns the page stored under key.
func (c *issueCache) Get(ctx context.Context, key string) ([]domain.RawIssue, time.Time, bool, error) {
	var (
		payload  string
		storedAt int64
	)
	err := c.store.db.QueryRowContext(ctx,
		"SELECT issues, stored_at FROM issue_pages WHERE cache_key = ?", key,
	).Scan(&payload, &storedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("reading cached page: %w", err)
	}

	var issues []domain.RawIssue
	if err := json.Unmarshal([]byte(payload), &issues); err != nil {
		return nil, time.Time{}, false, fmt.Errorf("decoding cached page: %w", err)
	}
	return issues, time.UnixMilli(storedAt), true, nil
}

// Put stores a page under key, replacing any previous page.
func (c *issueCache) Put(ctx context.Context, key string, issues []domain.RawIssue, storedAt time.Time) error {
	payload, err := json.Marshal(issues)
	if err != nil {
		return fmt.Errorf("encoding page: %w", err)
	}
	_, err = c.store.db.ExecContext(ctx, `
		INSERT INTO issue_pages (cache_key, issues, stored_at)
		VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			issues = excluded.issues,
			stored_at = excluded.stored_at
	`, key, string(payload), storedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("writing cached page: %w", err)
	}
	return nil
}

// Purge removes every cached page.
func (c *issueCache) Purge(ctx context.Context) error {
	if _, err := c.store.db.ExecContext(ctx, "DELETE FROM issue_pages"); err != nil {
		return fmt.Errorf("purging cache: %w", err)
	}
	return nil
}
