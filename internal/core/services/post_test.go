package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
	"github.com/custodia-labs/issueblog/internal/normalisers/post"
)

func newTestPostService(source driven.IssueSource) *PostService {
	settings := domain.DefaultSettings()
	settings.MaxPages = 3
	return NewPostService(source, post.New(), &settings)
}

func TestNewPostService_Defaults(t *testing.T) {
	s := NewPostService(newMockIssueSource(), post.New(), nil)

	require.NotNil(t, s)
	assert.Equal(t, domain.DefaultLabel, s.label)
	assert.Equal(t, domain.DefaultPageSize, s.pageSize)
	assert.Equal(t, domain.DefaultMaxPages, s.maxPages)
}

func TestPostService_ListPosts_LocaleFilter(t *testing.T) {
	source := newMockIssueSource([]domain.RawIssue{
		langIssue(4, "a", domain.LocaleZH),
		langIssue(3, "b", domain.LocaleEN),
		langIssue(2, "c", domain.LocaleZH),
		langIssue(1, "d", domain.LocaleJA),
	})
	s := newTestPostService(source)

	posts, err := s.ListPosts(context.Background(), domain.PageRequest{Locale: domain.LocaleEN})

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "b", posts[0].Slug)
	assert.Equal(t, domain.LocaleEN, posts[0].Lang)

	zh, err := s.ListPosts(context.Background(), domain.PageRequest{Locale: domain.LocaleZH})
	require.NoError(t, err)
	require.Len(t, zh, 2)
	assert.Equal(t, "a", zh[0].Slug)
	assert.Equal(t, "c", zh[1].Slug)
}

func TestPostService_ListPosts_Query(t *testing.T) {
	source := newMockIssueSource()
	s := newTestPostService(source)

	_, err := s.ListPosts(context.Background(), domain.PageRequest{Locale: domain.LocaleZH, Page: 2, PageSize: 10})
	require.NoError(t, err)

	calls := source.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, driven.IssueQuery{
		Label:   "blog",
		State:   driven.IssueStateOpen,
		Page:    2,
		PerPage: 10,
	}, calls[0])
}

func TestPostService_ListPosts_DefaultsRequest(t *testing.T) {
	source := newMockIssueSource()
	s := newTestPostService(source)

	_, err := s.ListPosts(context.Background(), domain.PageRequest{})
	require.NoError(t, err)

	calls := source.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, 1, calls[0].Page)
	assert.Equal(t, 100, calls[0].PerPage)
}

func TestPostService_ListPosts_SkipsPullRequests(t *testing.T) {
	pr := issueWithBody(2, "PR body")
	pr.PullRequest = &domain.PullRequestRef{URL: "https://api.github.com/repos/o/r/pulls/2"}
	source := newMockIssueSource([]domain.RawIssue{pr, issueWithBody(1, "Post body")})
	s := newTestPostService(source)

	posts, err := s.ListPosts(context.Background(), domain.PageRequest{})

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 1, posts[0].Number)
}

func TestPostService_ListPosts_DefaultsApplied(t *testing.T) {
	source := newMockIssueSource([]domain.RawIssue{issueWithBody(5, "Hello ![img](https://x.example/a.png)")})
	s := newTestPostService(source)

	posts, err := s.ListPosts(context.Background(), domain.PageRequest{})

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "5", posts[0].Slug)
	assert.Equal(t, domain.LocaleZH, posts[0].Lang)
	assert.Equal(t, "Issue 5", posts[0].Title)
	assert.Equal(t, "https://x.example/a.png", posts[0].CoverImage)
}

func TestPostService_ListPosts_SourceFailure(t *testing.T) {
	source := newMockIssueSource()
	source.err = errors.New("connection refused")
	s := newTestPostService(source)

	posts, err := s.ListPosts(context.Background(), domain.PageRequest{})

	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestPostService_ListPosts_InvalidLocale(t *testing.T) {
	source := newMockIssueSource()
	s := newTestPostService(source)

	_, err := s.ListPosts(context.Background(), domain.PageRequest{Locale: "fr"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidLocale)
	assert.Empty(t, source.calls())
}

func TestPostService_GetPostBySlug(t *testing.T) {
	source := newMockIssueSource([]domain.RawIssue{
		langIssue(3, "hello", domain.LocaleEN),
		langIssue(2, "hello", domain.LocaleZH),
		langIssue(1, "other", domain.LocaleZH),
	})
	s := newTestPostService(source)

	p, err := s.GetPostBySlug(context.Background(), "hello", domain.LocaleZH)

	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, domain.LocaleZH, p.Lang)
}

func TestPostService_GetPostBySlug_FirstMatchWins(t *testing.T) {
	source := newMockIssueSource([]domain.RawIssue{
		langIssue(9, "dup", domain.LocaleZH),
		langIssue(8, "dup", domain.LocaleZH),
	})
	s := newTestPostService(source)

	p, err := s.GetPostBySlug(context.Background(), "dup", domain.LocaleZH)

	require.NoError(t, err)
	assert.Equal(t, 9, p.Number)
}

func TestPostService_GetPostBySlug_WalksPages(t *testing.T) {
	source := newMockIssueSource(
		fullPage(200, 100),
		[]domain.RawIssue{langIssue(50, "deep", domain.LocaleZH)},
	)
	s := newTestPostService(source)

	p, err := s.GetPostBySlug(context.Background(), "deep", domain.LocaleZH)

	require.NoError(t, err)
	assert.Equal(t, 50, p.Number)
	assert.Len(t, source.calls(), 2)
}

func TestPostService_GetPostBySlug_StopsAtShortPage(t *testing.T) {
	source := newMockIssueSource(
		fullPage(200, 100),
		fullPage(100, 10),
		[]domain.RawIssue{langIssue(1, "unreachable", domain.LocaleZH)},
	)
	s := newTestPostService(source)

	_, err := s.GetPostBySlug(context.Background(), "unreachable", domain.LocaleZH)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, source.calls(), 2)
}

func TestPostService_GetPostBySlug_StopsAtPageLimit(t *testing.T) {
	source := newMockIssueSource(fullPage(500, 100), fullPage(400, 100), fullPage(300, 100), fullPage(200, 100))
	s := newTestPostService(source)

	_, err := s.GetPostBySlug(context.Background(), "post-150", domain.LocaleZH)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, source.calls(), 3)
}

func TestPostService_GetPostBySlug_NotFound(t *testing.T) {
	source := newMockIssueSource([]domain.RawIssue{langIssue(1, "hello", domain.LocaleEN)})
	s := newTestPostService(source)

	p, err := s.GetPostBySlug(context.Background(), "hello", domain.LocaleJA)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostService_GetPostBySlug_SourceFailure(t *testing.T) {
	source := newMockIssueSource()
	source.err = errors.New("boom")
	s := newTestPostService(source)

	_, err := s.GetPostBySlug(context.Background(), "hello", domain.LocaleZH)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostService_GetPostBySlug_InvalidInput(t *testing.T) {
	s := newTestPostService(newMockIssueSource())

	_, err := s.GetPostBySlug(context.Background(), "  ", domain.LocaleZH)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.GetPostBySlug(context.Background(), "x", "de")
	assert.ErrorIs(t, err, domain.ErrInvalidLocale)
}

func TestPostService_GetPostBySlug_LegacyMultiLocale(t *testing.T) {
	body := "slug: legacy\n---\n# 标题\n内容\n<!-- lang:en -->\n# Title\nContent"
	source := newMockIssueSource([]domain.RawIssue{issueWithBody(1, body)})
	s := newTestPostService(source)

	for _, locale := range domain.SupportedLocales() {
		p, err := s.GetPostBySlug(context.Background(), "legacy", locale)
		require.NoError(t, err, locale)
		assert.Equal(t, locale, p.Lang)
	}
}

func TestPostService_Headings(t *testing.T) {
	source := newMockIssueSource([]domain.RawIssue{
		issueWithBody(1, "---\nslug: toc\n---\n# Intro\n\n## Part Two\n\n```\n# code\n```"),
	})
	s := newTestPostService(source)

	headings, err := s.Headings(context.Background(), "toc", domain.LocaleZH)

	require.NoError(t, err)
	assert.Equal(t, []domain.Heading{
		{ID: "intro", Text: "Intro", Level: 1},
		{ID: "part-two", Text: "Part Two", Level: 2},
	}, headings)

	_, err = s.Headings(context.Background(), "missing", domain.LocaleZH)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostService_Sitemap(t *testing.T) {
	source := newMockIssueSource([]domain.RawIssue{
		langIssue(2, "hello", domain.LocaleEN),
		langIssue(1, "nihao", domain.LocaleZH),
	})
	s := newTestPostService(source)
	s.SetClock(func() time.Time { return testTime })

	entries, err := s.Sitemap(context.Background(), "https://blog.example.com/")

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, domain.SitemapEntry{
		URL:             "https://blog.example.com",
		LastModified:    testTime,
		ChangeFrequency: domain.ChangeDaily,
		Priority:        1.0,
	}, entries[0])
	assert.Equal(t, "https://blog.example.com/zh/nihao", entries[1].URL)
	assert.Equal(t, domain.ChangeWeekly, entries[1].ChangeFrequency)
	assert.InDelta(t, 0.7, entries[1].Priority, 1e-9)
	assert.Equal(t, testTime.Add(time.Hour), entries[1].LastModified)
	assert.Equal(t, "https://blog.example.com/en/hello", entries[2].URL)
}

func TestPostService_Sitemap_RequiresBaseURL(t *testing.T) {
	s := newTestPostService(newMockIssueSource())

	_, err := s.Sitemap(context.Background(), " ")

	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}
