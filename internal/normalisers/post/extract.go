package post

import (
	"strings"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

// detector recognises one body format. It reports false when the body is
// not in its format; it never fails.
type detector func(body string) (domain.ParsedPostData, bool)

// detectors are tried in priority order. The raw format is the fallback
// and has no detector.
var detectors = []detector{
	detectFrontMatter,
	detectIssueForm,
}

// Extract parses an issue body into post data.
func Extract(body string) domain.ParsedPostData {
	for _, detect := range detectors {
		if data, ok := detect(body); ok {
			return data
		}
	}
	return domain.ParsedPostData{
		Format: domain.FormatRaw,
		Body:   body,
	}
}

// normaliseLang maps a declared language onto a locale. Unsupported values
// are kept so that such posts match no supported locale.
func normaliseLang(s string) domain.Locale {
	return domain.Locale(strings.ToLower(strings.TrimSpace(s)))
}
