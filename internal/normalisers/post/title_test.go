package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		title string
		rest  string
		ok    bool
	}{
		{"h1 first", "# Hello\n\nBody", "Hello", "Body", true},
		{"leading blank lines", "\n\n# Hello  \nBody\n", "Hello", "Body", true},
		{"h1 only", "# Only", "Only", "", true},
		{"h2 first", "## Not a title\nBody", "", "## Not a title\nBody", false},
		{"no space", "#Hashtag\nBody", "", "#Hashtag\nBody", false},
		{"h1 not first", "Intro\n# Later", "", "Intro\n# Later", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, rest, ok := DeriveTitle(tt.body)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.rest, rest)
		})
	}
}
