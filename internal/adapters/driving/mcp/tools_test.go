package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

func testPosts() []domain.Post {
	return []domain.Post{
		{
			Number:     3,
			Title:      "Hello",
			Slug:       "hello",
			Lang:       domain.LocaleEN,
			Body:       "## Intro\nSome **bold** text",
			CoverImage: "https://img.example/c.png",
			Labels:     []domain.Label{{Name: "blog"}, {Name: "go"}},
			CreatedAt:  time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC),
			HTMLURL:    "https://github.com/o/r/issues/3",
		},
		{Number: 2, Title: "你好", Slug: "ni-hao", Lang: domain.LocaleZH, Body: "正文"},
	}
}

func newTestServer(t *testing.T, svc *mockPostService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Posts: svc})
	require.NoError(t, err)
	return server
}

func TestServer_handleListPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("lists posts in a language", func(t *testing.T) {
		svc := &mockPostService{posts: testPosts()}
		server := newTestServer(t, svc)

		_, output, err := server.handleListPosts(ctx, nil, ListPostsInput{Lang: "en", Page: 2, PerPage: 5})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Posts, 1)
		got := output.Posts[0]
		assert.Equal(t, "hello", got.Slug)
		assert.Equal(t, "en", got.Lang)
		assert.Equal(t, "2024-02-03", got.CreatedAt)
		assert.Equal(t, []string{"blog", "go"}, got.Labels)
		assert.Equal(t, "issueblog://posts/en/hello", got.URI)
		assert.Equal(t, domain.PageRequest{Locale: domain.LocaleEN, Page: 2, PageSize: 5}, svc.lastReq)
	})

	t.Run("defaults to zh", func(t *testing.T) {
		svc := &mockPostService{posts: testPosts()}
		server := newTestServer(t, svc)

		_, output, err := server.handleListPosts(ctx, nil, ListPostsInput{})

		require.NoError(t, err)
		require.Len(t, output.Posts, 1)
		assert.Equal(t, "ni-hao", output.Posts[0].Slug)
		assert.Equal(t, domain.LocaleZH, svc.lastReq.Locale)
	})

	t.Run("empty listing", func(t *testing.T) {
		server := newTestServer(t, &mockPostService{})

		_, output, err := server.handleListPosts(ctx, nil, ListPostsInput{Lang: "ja"})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Posts)
	})

	t.Run("unsupported language", func(t *testing.T) {
		server := newTestServer(t, &mockPostService{})

		_, _, err := server.handleListPosts(ctx, nil, ListPostsInput{Lang: "de"})

		assert.ErrorIs(t, err, domain.ErrInvalidLocale)
	})

	t.Run("service error", func(t *testing.T) {
		server := newTestServer(t, &mockPostService{err: errors.New("boom")})

		_, _, err := server.handleListPosts(ctx, nil, ListPostsInput{})

		assert.EqualError(t, err, "boom")
	})
}

func TestServer_handleGetPost(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockPostService{posts: testPosts()})

	t.Run("returns body and metadata", func(t *testing.T) {
		_, output, err := server.handleGetPost(ctx, nil, PostInput{Slug: "hello", Lang: "en"})

		require.NoError(t, err)
		assert.Equal(t, "Hello", output.Post.Title)
		assert.Equal(t, "https://img.example/c.png", output.Post.CoverImage)
		assert.Equal(t, "## Intro\nSome **bold** text", output.Body)
		assert.Equal(t, "https://github.com/o/r/issues/3", output.HTMLURL)
	})

	t.Run("not found", func(t *testing.T) {
		_, _, err := server.handleGetPost(ctx, nil, PostInput{Slug: "hello", Lang: "ja"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServer_handleGetHeadings(t *testing.T) {
	ctx := context.Background()
	headings := []domain.Heading{{ID: "intro", Text: "Intro", Level: 2}}
	server := newTestServer(t, &mockPostService{posts: testPosts(), headings: headings})

	_, output, err := server.handleGetHeadings(ctx, nil, PostInput{Slug: "hello", Lang: "en"})
	require.NoError(t, err)
	assert.Equal(t, headings, output.Headings)

	_, _, err = server.handleGetHeadings(ctx, nil, PostInput{Slug: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
