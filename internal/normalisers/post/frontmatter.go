package post

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

const (
	frontMatterDelimiter = "---"
	byteOrderMark        = "\ufeff"
)

// detectFrontMatter recognises a body that opens with a YAML block.
// The block must parse to at least one key.
func detectFrontMatter(body string) (domain.ParsedPostData, bool) {
	block, content, ok := splitFrontMatter(body)
	if !ok {
		return domain.ParsedPostData{}, false
	}

	var meta map[string]any
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil || len(meta) == 0 {
		return domain.ParsedPostData{}, false
	}

	return domain.ParsedPostData{
		Format:      domain.FormatFrontMatter,
		Slug:        scalar(meta["slug"]),
		Lang:        normaliseLang(scalar(meta["lang"])),
		Description: scalar(meta["description"]),
		CoverImage:  scalar(meta["coverImage"]),
		Title:       scalar(meta["title"]),
		Body:        content,
	}, true
}

// splitFrontMatter separates a leading "---" delimited block from the rest
// of the body. The content starts on the line after the closing delimiter.
func splitFrontMatter(body string) (block, content string, ok bool) {
	body = strings.TrimPrefix(body, byteOrderMark)

	first, rest, found := cutLine(body)
	if !found || !isDelimiter(first) {
		return "", "", false
	}

	var lines []string
	for rest != "" {
		var line string
		line, rest, _ = cutLine(rest)
		if isDelimiter(line) {
			return strings.Join(lines, "\n"), rest, true
		}
		lines = append(lines, line)
	}
	return "", "", false
}

// cutLine splits s after its first line. The returned line has its line
// ending removed.
func cutLine(s string) (line, rest string, found bool) {
	line, rest, found = strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r"), rest, found
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t") == frontMatterDelimiter
}

// scalar converts a YAML value to a trimmed string. Collections are ignored.
func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(val)
	default:
		return ""
	}
}
