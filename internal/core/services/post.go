package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
	"github.com/custodia-labs/issueblog/internal/core/ports/driving"
	"github.com/custodia-labs/issueblog/internal/logger"
)

// Ensure PostService implements the interface.
var _ driving.PostService = (*PostService)(nil)

// Sitemap priorities.
const (
	sitemapRootPriority = 1.0
	sitemapPostPriority = 0.7
)

// PostService builds blog posts from labelled issues on every call.
type PostService struct {
	source     driven.IssueSource
	normaliser driven.PostNormaliser
	label      string
	pageSize   int
	maxPages   int
	now        func() time.Time
}

// NewPostService creates a new post service. The label, page size and page
// limit are taken from settings.
func NewPostService(
	source driven.IssueSource,
	normaliser driven.PostNormaliser,
	settings *domain.Settings,
) *PostService {
	s := &PostService{
		source:     source,
		normaliser: normaliser,
		label:      domain.DefaultLabel,
		pageSize:   domain.DefaultPageSize,
		maxPages:   domain.DefaultMaxPages,
		now:        time.Now,
	}
	if settings != nil {
		if settings.Label != "" {
			s.label = settings.Label
		}
		if settings.PageSize > 0 {
			s.pageSize = min(settings.PageSize, domain.MaxPageSize)
		}
		if settings.MaxPages > 0 {
			s.maxPages = settings.MaxPages
		}
	}
	return s
}

// SetClock replaces the clock used for sitemap timestamps.
func (s *PostService) SetClock(now func() time.Time) {
	s.now = now
}

// ListPosts returns one page of posts in the requested locale.
func (s *PostService) ListPosts(ctx context.Context, req domain.PageRequest) ([]domain.Post, error) {
	if req.PageSize < 1 {
		req.PageSize = s.pageSize
	}
	req = req.Normalize()
	if !req.Locale.IsSupported() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidLocale, req.Locale)
	}

	logger.Debug("Listing posts: locale=%s page=%d per_page=%d", req.Locale, req.Page, req.PageSize)
	posts, _ := s.page(ctx, req)
	return posts, nil
}

// GetPostBySlug walks the listing pages until a post with slug is found.
func (s *PostService) GetPostBySlug(ctx context.Context, slug string, locale domain.Locale) (*domain.Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: empty slug", domain.ErrInvalidInput)
	}
	if !locale.IsSupported() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidLocale, locale)
	}

	var found *domain.Post
	s.walk(ctx, locale, func(p domain.Post) bool {
		if p.Slug == slug {
			found = &p
			return false
		}
		return true
	})
	if found == nil {
		logger.Debug("Post %q not found in locale %s", slug, locale)
		return nil, fmt.Errorf("post %q: %w", slug, domain.ErrNotFound)
	}
	return found, nil
}

// Headings returns the table of contents of the post with slug.
func (s *PostService) Headings(ctx context.Context, slug string, locale domain.Locale) ([]domain.Heading, error) {
	post, err := s.GetPostBySlug(ctx, slug, locale)
	if err != nil {
		return nil, err
	}
	return s.normaliser.Headings(post.Body), nil
}

// Sitemap lists the site root followed by every post in every locale.
func (s *PostService) Sitemap(ctx context.Context, baseURL string) ([]domain.SitemapEntry, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: site base URL is required", domain.ErrNotConfigured)
	}

	entries := []domain.SitemapEntry{{
		URL:             baseURL,
		LastModified:    s.now(),
		ChangeFrequency: domain.ChangeDaily,
		Priority:        sitemapRootPriority,
	}}
	for _, locale := range domain.SupportedLocales() {
		s.walk(ctx, locale, func(p domain.Post) bool {
			entries = append(entries, domain.SitemapEntry{
				URL:             fmt.Sprintf("%s/%s/%s", baseURL, locale, p.Slug),
				LastModified:    p.UpdatedAt,
				ChangeFrequency: domain.ChangeWeekly,
				Priority:        sitemapPostPriority,
			})
			return true
		})
	}
	return entries, nil
}

// walk calls fn for every post in locale, page by page, until fn returns
// false, a short page is reached or the page limit is hit.
func (s *PostService) walk(ctx context.Context, locale domain.Locale, fn func(domain.Post) bool) {
	for page := 1; page <= s.maxPages; page++ {
		req := domain.PageRequest{Locale: locale, Page: page, PageSize: domain.MaxPageSize}
		posts, fetched := s.page(ctx, req)
		for _, p := range posts {
			if !fn(p) {
				return
			}
		}
		if fetched < req.PageSize {
			return
		}
	}
	logger.Debug("Stopped after %d pages in locale %s", s.maxPages, locale)
}

// page fetches one page of issues and turns it into posts. It also returns
// the number of issues fetched, so callers can detect the last page.
// Tracker failures are logged and produce an empty page.
func (s *PostService) page(ctx context.Context, req domain.PageRequest) ([]domain.Post, int) {
	issues, err := s.source.ListIssues(ctx, driven.IssueQuery{
		Label:   s.label,
		State:   driven.IssueStateOpen,
		Page:    req.Page,
		PerPage: req.PageSize,
	})
	if err != nil {
		logger.Warn("Failed to fetch issues (page %d): %v", req.Page, err)
		return []domain.Post{}, 0
	}

	posts := make([]domain.Post, 0, len(issues))
	for i := range issues {
		if issues[i].IsPullRequest() {
			continue
		}
		if p, ok := s.normaliser.Normalise(&issues[i], req.Locale); ok {
			posts = append(posts, p)
		}
	}
	return posts, len(issues)
}
