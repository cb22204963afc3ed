package post

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

var (
	localeMarker = regexp.MustCompile(`<!--\s*lang:(\w+)\s*-->`)
	legacySlug   = regexp.MustCompile(`^\s*slug:[ \t]*([a-z0-9-]+)[ \t]*(?:\r?\n|$)(?:[ \t]*---?[ \t]*(?:\r?\n|$))?`)
)

// HasLocaleMarkers reports whether body keeps several translations
// separated by "<!-- lang:xx -->" markers.
func HasLocaleMarkers(body string) bool {
	return localeMarker.MatchString(body)
}

// SplitLocales splits a multi-locale body into its translations. Text
// before the first marker belongs to the default locale. Empty sections
// are dropped and a repeated marker replaces the earlier section.
func SplitLocales(body string) map[domain.Locale]string {
	sections := make(map[domain.Locale]string)
	add := func(locale domain.Locale, text string) {
		if text = strings.TrimSpace(text); text != "" {
			sections[locale] = text
		}
	}

	markers := localeMarker.FindAllStringSubmatchIndex(body, -1)
	if len(markers) == 0 {
		add(domain.DefaultLocale, body)
		return sections
	}

	add(domain.DefaultLocale, body[:markers[0][0]])
	for i, m := range markers {
		end := len(body)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		add(normaliseLang(body[m[2]:m[3]]), body[m[1]:end])
	}
	return sections
}

// ResolveLocale returns the translation of body for locale, falling back
// to the default locale and then to the whole body.
func ResolveLocale(body string, locale domain.Locale) string {
	sections := SplitLocales(body)
	if text, ok := sections[locale]; ok {
		return text
	}
	if text, ok := sections[domain.DefaultLocale]; ok {
		return text
	}
	return strings.TrimSpace(body)
}

// LegacySlug returns the slug declared by a "slug: xxx" header line at the
// top of body, or "".
func LegacySlug(body string) string {
	if m := legacySlug.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return ""
}

// StripLegacySlug removes the slug header line and the "---" line that may
// follow it.
func StripLegacySlug(body string) string {
	loc := legacySlug.FindStringIndex(body)
	if loc == nil {
		return body
	}
	return body[loc[1]:]
}
