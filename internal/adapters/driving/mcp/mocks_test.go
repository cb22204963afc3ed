package mcp

import (
	"context"
	"fmt"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

// mockPostService is a mock implementation of driving.PostService.
type mockPostService struct {
	posts    []domain.Post
	headings []domain.Heading
	err      error
	lastReq  domain.PageRequest
}

func (m *mockPostService) ListPosts(_ context.Context, req domain.PageRequest) ([]domain.Post, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Post
	for _, p := range m.posts {
		if p.Lang == req.Locale {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPostService) GetPostBySlug(_ context.Context, slug string, locale domain.Locale) (*domain.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.posts {
		if m.posts[i].Slug == slug && m.posts[i].Lang == locale {
			return &m.posts[i], nil
		}
	}
	return nil, fmt.Errorf("post %q: %w", slug, domain.ErrNotFound)
}

func (m *mockPostService) Headings(ctx context.Context, slug string, locale domain.Locale) ([]domain.Heading, error) {
	if _, err := m.GetPostBySlug(ctx, slug, locale); err != nil {
		return nil, err
	}
	return m.headings, nil
}

func (m *mockPostService) Sitemap(_ context.Context, _ string) ([]domain.SitemapEntry, error) {
	return nil, m.err
}
