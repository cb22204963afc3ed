package post

import (
	"regexp"
	"strings"
)

var h1Line = regexp.MustCompile(`^#[ \t]+(.+)$`)

// DeriveTitle takes the title from a body whose first non-blank line is a
// level-1 heading. It returns the heading text and the remaining body.
func DeriveTitle(body string) (title, rest string, ok bool) {
	body = strings.TrimSpace(body)
	first, remainder, _ := cutLine(body)

	m := h1Line.FindStringSubmatch(strings.TrimRight(first, " \t"))
	if m == nil {
		return "", body, false
	}
	title = strings.TrimSpace(m[1])
	if title == "" {
		return "", body, false
	}
	return title, strings.TrimSpace(remainder), true
}
