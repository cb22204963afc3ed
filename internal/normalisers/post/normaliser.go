package post

import (
	"strconv"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.PostNormaliser = (*Normaliser)(nil)

// Normaliser builds posts from raw issues. It is stateless and safe for
// concurrent use.
type Normaliser struct{}

// New creates a post normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise builds the post for locale from issue.
//
// Bodies with locale markers carry every translation and always produce a
// post, using the requested translation or the default one. Other bodies
// declare one language (the default locale when absent) and produce a post
// only for that locale.
func (n *Normaliser) Normalise(issue *domain.RawIssue, locale domain.Locale) (domain.Post, bool) {
	if issue == nil {
		return domain.Post{}, false
	}

	parsed := Extract(issue.Body)
	post := domain.Post{
		ID:          issue.ID,
		Number:      issue.Number,
		Title:       issue.Title,
		CreatedAt:   issue.CreatedAt,
		UpdatedAt:   issue.UpdatedAt,
		Labels:      append([]domain.Label(nil), issue.Labels...),
		User:        issue.User,
		HTMLURL:     issue.HTMLURL,
		Description: parsed.Description,
		CoverImage:  parsed.CoverImage,
	}
	if post.Labels == nil {
		post.Labels = []domain.Label{}
	}
	if parsed.Title != "" {
		post.Title = parsed.Title
	}

	var slug string
	if HasLocaleMarkers(parsed.Body) {
		slug = multiLocale(&post, parsed, locale)
	} else {
		slug = singleLocale(&post, parsed)
		if post.Lang != locale {
			return domain.Post{}, false
		}
	}

	post.Slug = firstNonEmpty(parsed.Slug, slug, strconv.Itoa(issue.Number))
	if post.CoverImage == "" {
		post.CoverImage = FirstImageURL(post.Body)
	}
	return post, true
}

// Headings lists the headings of a post body.
func (n *Normaliser) Headings(body string) []domain.Heading {
	return ExtractHeadings(body)
}

// multiLocale resolves a body holding several translations. It returns the
// slug declared by a legacy header, if any.
func multiLocale(post *domain.Post, parsed domain.ParsedPostData, locale domain.Locale) string {
	slug := LegacySlug(parsed.Body)
	body := ResolveLocale(StripLegacySlug(parsed.Body), locale)

	if parsed.Title == "" {
		if title, rest, ok := DeriveTitle(body); ok {
			post.Title = title
			body = rest
		}
	}
	post.Body = body
	post.Lang = locale
	return slug
}

// singleLocale resolves a body in one declared language. Raw bodies may
// still start with a legacy slug header.
func singleLocale(post *domain.Post, parsed domain.ParsedPostData) string {
	post.Body = parsed.Body
	post.Lang = parsed.Lang
	if post.Lang == "" {
		post.Lang = domain.DefaultLocale
	}

	if parsed.Format != domain.FormatRaw {
		return ""
	}
	slug := LegacySlug(parsed.Body)
	if slug != "" {
		post.Body = StripLegacySlug(parsed.Body)
	}
	return slug
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
