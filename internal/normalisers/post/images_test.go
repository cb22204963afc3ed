package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstImageURL(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"none", "no images here", ""},
		{"markdown", "Intro\n\n![a](https://x.example/1.png)", "https://x.example/1.png"},
		{"markdown with title", `![a](https://x.example/1.png "Title")`, "https://x.example/1.png"},
		{"html", `<p><img alt="x" src='https://x.example/2.png'></p>`, "https://x.example/2.png"},
		{"markdown first", "![a](https://x.example/1.png)\n<img src=\"https://x.example/2.png\">", "https://x.example/1.png"},
		{"html first", "<img src=\"https://x.example/2.png\">\n![a](https://x.example/1.png)", "https://x.example/2.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstImageURL(tt.body))
		})
	}
}
