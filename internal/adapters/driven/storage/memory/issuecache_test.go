package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

func TestIssueCache_GetMissing(t *testing.T) {
	cache := NewIssueCache()

	issues, storedAt, ok, err := cache.Get(context.Background(), "issues:blog:open:1:100")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, issues)
	assert.True(t, storedAt.IsZero())
}

func TestIssueCache_PutAndGet(t *testing.T) {
	ctx := context.Background()
	cache := NewIssueCache()
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	page := []domain.RawIssue{
		{Number: 2, Title: "Second", Labels: []domain.Label{{Name: "blog"}}},
		{Number: 1, Title: "First"},
	}

	require.NoError(t, cache.Put(ctx, "k", page, now))
	got, storedAt, ok, err := cache.Get(ctx, "k")

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, page, got)
	assert.Equal(t, now, storedAt)
	assert.Equal(t, 1, cache.Len())
}

func TestIssueCache_IsolatesCallers(t *testing.T) {
	ctx := context.Background()
	cache := NewIssueCache()
	page := []domain.RawIssue{{Number: 1, Labels: []domain.Label{{Name: "blog"}}}}

	require.NoError(t, cache.Put(ctx, "k", page, time.Now()))
	page[0].Labels[0].Name = "changed"

	got, _, _, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	got[0].Title = "changed"

	again, _, _, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "blog", again[0].Labels[0].Name)
	assert.Empty(t, again[0].Title)
}

func TestIssueCache_Purge(t *testing.T) {
	ctx := context.Background()
	cache := NewIssueCache()
	require.NoError(t, cache.Put(ctx, "a", nil, time.Now()))
	require.NoError(t, cache.Put(ctx, "b", nil, time.Now()))

	require.NoError(t, cache.Purge(ctx))

	assert.Equal(t, 0, cache.Len())
	_, _, ok, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}
