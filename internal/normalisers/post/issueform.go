package post

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

// Issue form section headers.
const (
	sectionSlug        = "Slug"
	sectionLanguage    = "Language"
	sectionDescription = "Description"
	sectionCoverImage  = "Cover Image"
	sectionCoverURL    = "Cover Image URL"
	sectionContent     = "Content"
)

// GitHub fills optional form fields left blank with one of these.
var noResponse = map[string]bool{
	"No response":   true,
	"_No response_": true,
}

var (
	nextSectionPattern = regexp.MustCompile(`(?m)^###`)
	markdownImageURL   = regexp.MustCompile(`!\[[^\]]*\]\(\s*<?([^)\s>]+)>?[^)]*\)`)
	htmlImageURL       = regexp.MustCompile(`(?i)<img\b[^>]*?\ssrc\s*=\s*["']([^"']+)["']`)
	sectionPatterns    = map[string]*regexp.Regexp{}
)

func init() {
	for _, name := range []string{
		sectionSlug, sectionLanguage, sectionDescription,
		sectionCoverImage, sectionCoverURL, sectionContent,
	} {
		sectionPatterns[name] = regexp.MustCompile(
			`(?im)^###[ \t]+` + regexp.QuoteMeta(name) + `[ \t]*\r?\n`)
	}
}

// detectIssueForm recognises a body written by a GitHub issue form. It
// matches when either the slug or the content section is present.
func detectIssueForm(body string) (domain.ParsedPostData, bool) {
	slug := section(body, sectionSlug)
	content := contentSection(body)
	if slug == "" && content == "" {
		return domain.ParsedPostData{}, false
	}

	cover := section(body, sectionCoverImage)
	if cover == "" {
		cover = section(body, sectionCoverURL)
	}

	data := domain.ParsedPostData{
		Format:      domain.FormatIssueForm,
		Slug:        slug,
		Lang:        normaliseLang(section(body, sectionLanguage)),
		Description: section(body, sectionDescription),
		CoverImage:  imageURL(cover),
		Body:        content,
	}
	if data.Body == "" {
		data.Body = body
	}
	return data, true
}

// section returns the trimmed text between the named header and the next
// "###" line. Blank and placeholder values are reported as "".
func section(body, name string) string {
	loc := sectionPatterns[name].FindStringIndex(body)
	if loc == nil {
		return ""
	}
	rest := body[loc[1]:]
	if next := nextSectionPattern.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}
	return present(rest)
}

// contentSection returns everything after the Content header. Post bodies
// may contain their own "###" headings, so it runs to the end of the body.
func contentSection(body string) string {
	loc := sectionPatterns[sectionContent].FindStringIndex(body)
	if loc == nil {
		return ""
	}
	return present(body[loc[1]:])
}

func present(value string) string {
	value = strings.TrimSpace(value)
	if noResponse[value] {
		return ""
	}
	return value
}

// imageURL unwraps a cover image given as markdown or an <img> tag.
// Anything else is taken to be a URL already.
func imageURL(value string) string {
	if m := markdownImageURL.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	if m := htmlImageURL.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	return value
}
