package domain

import (
	"strings"
	"time"
)

// BodyFormat identifies which issue body format an extraction matched.
type BodyFormat int

const (
	// FormatRaw is the unstructured fallback: the body is used verbatim.
	FormatRaw BodyFormat = iota

	// FormatFrontMatter is a leading YAML metadata block.
	FormatFrontMatter

	// FormatIssueForm is a body made of "### Header" sections, as produced
	// by GitHub issue forms.
	FormatIssueForm
)

// String returns the string representation.
func (f BodyFormat) String() string {
	switch f {
	case FormatFrontMatter:
		return "front_matter"
	case FormatIssueForm:
		return "issue_form"
	default:
		return "raw"
	}
}

// ParsedPostData is the metadata and content extracted from one issue body.
// Optional fields are empty when the body did not supply them.
type ParsedPostData struct {
	// Format is the body format that produced this data.
	Format BodyFormat

	Slug        string
	Lang        Locale
	Description string
	CoverImage  string

	// Title overrides the issue title. Only front-matter can set it.
	Title string

	// Body is the content with any metadata block or form sections removed.
	// It is always set; for FormatRaw it equals the raw body.
	Body string
}

// excerptLength is the number of runes kept by Post.Excerpt.
const excerptLength = 160

// Post is a normalised, locale-resolved blog post.
// Posts are built fresh on every read and never mutated afterwards.
type Post struct {
	ID        int64     `json:"id"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Labels    []Label   `json:"labels"`
	User      User      `json:"user"`
	HTMLURL   string    `json:"html_url"`

	Slug        string `json:"slug"`
	Lang        Locale `json:"lang"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
}

// Excerpt returns a short summary for listings and page metadata.
// It is the description when set, otherwise the start of the body with
// markdown emphasis, heading and code markers removed.
func (p *Post) Excerpt() string {
	if p.Description != "" {
		return p.Description
	}

	runes := []rune(p.Body)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	excerpt := strings.Map(func(r rune) rune {
		switch r {
		case '#', '*', '`':
			return -1
		}
		return r
	}, string(runes))
	return strings.TrimSpace(excerpt)
}

// LabelNames returns the names of the post's labels.
func (p *Post) LabelNames() []string {
	names := make([]string, len(p.Labels))
	for i, l := range p.Labels {
		names[i] = l.Name
	}
	return names
}
