package post

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonIDChars    = regexp.MustCompile(`[^\w-]`)
)

var markdown = goldmark.New()

// ExtractHeadings lists the ATX headings of a markdown body in document
// order. Lines inside code blocks are never headings.
func ExtractHeadings(body string) []domain.Heading {
	src := []byte(body)
	doc := markdown.Parser().Parse(text.NewReader(src))

	headings := []domain.Heading{}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || !isATX(h, src) {
			continue
		}
		label := strings.TrimSpace(string(h.Text(src)))
		if label == "" {
			continue
		}
		headings = append(headings, domain.Heading{
			ID:    HeadingID(label),
			Text:  label,
			Level: h.Level,
		})
	}
	return headings
}

// HeadingID builds the anchor id for a heading text.
func HeadingID(label string) string {
	id := strings.ToLower(label)
	id = whitespaceRun.ReplaceAllString(id, "-")
	id = nonIDChars.ReplaceAllString(id, "")
	return strings.Trim(id, "-")
}

// isATX reports whether a heading was written with leading "#" characters
// rather than as a setext underline.
func isATX(h *ast.Heading, src []byte) bool {
	lines := h.Lines()
	if lines.Len() == 0 {
		return false
	}
	start := lines.At(0).Start
	lineStart := start
	for lineStart > 0 && src[lineStart-1] != '\n' {
		lineStart--
	}
	prefix := strings.TrimLeft(string(src[lineStart:start]), " ")
	return strings.HasPrefix(prefix, "#")
}
