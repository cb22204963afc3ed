package domain

import (
	"fmt"
	"strings"
)

// Locale identifies the language a post is written in.
type Locale string

// Supported locales.
const (
	LocaleZH Locale = "zh"
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
)

// DefaultLocale is used when a post does not declare its language.
const DefaultLocale = LocaleZH

// SupportedLocales returns every locale a post can be published in.
func SupportedLocales() []Locale {
	return []Locale{LocaleZH, LocaleEN, LocaleJA}
}

// IsSupported returns true if the locale is one of the supported locales.
func (l Locale) IsSupported() bool {
	switch l {
	case LocaleZH, LocaleEN, LocaleJA:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l Locale) String() string {
	return string(l)
}

// ParseLocale parses caller-supplied locale input such as a URL segment
// or a CLI flag. Input is trimmed and lowercased.
func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsSupported() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocale, s)
	}
	return l, nil
}
