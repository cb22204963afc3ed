package driven

import (
	"github.com/custodia-labs/issueblog/internal/core/domain"
)

// PostNormaliser turns a raw issue into a post for one locale.
type PostNormaliser interface {
	// Normalise builds the post for locale. It reports false when the
	// issue is not published in that locale.
	Normalise(issue *domain.RawIssue, locale domain.Locale) (domain.Post, bool)

	// Headings lists the headings of a post body.
	Headings(body string) []domain.Heading
}
