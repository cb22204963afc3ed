package driving

import (
	"context"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

// PostService exposes blog posts built from tracker issues.
// Every call fetches and parses afresh; no post is cached by the service.
type PostService interface {
	// ListPosts returns one page of posts in the requested locale, in
	// tracker order. A tracker failure yields an empty page, not an error.
	ListPosts(ctx context.Context, req domain.PageRequest) ([]domain.Post, error)

	// GetPostBySlug returns the post with the given slug in the given locale.
	// Returns domain.ErrNotFound if no post matches.
	GetPostBySlug(ctx context.Context, slug string, locale domain.Locale) (*domain.Post, error)

	// Headings returns the table of contents of the post with the given slug.
	Headings(ctx context.Context, slug string, locale domain.Locale) ([]domain.Heading, error)

	// Sitemap returns site map entries for every post in every locale.
	Sitemap(ctx context.Context, baseURL string) ([]domain.SitemapEntry, error)
}
