package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

// uriScheme is the custom URI scheme for issueblog resources.
const uriScheme = "issueblog://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "posts/{lang}/{slug}",
		Name:        "post",
		Description: "Markdown body of a blog post",
		MIMEType:    "text/markdown",
	}, s.handlePostResource)
}

// handlePostResource returns the markdown body of a post.
func (s *Server) handlePostResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	lang, slug := extractPostRef(req.Params.URI)
	if lang == "" || slug == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	locale, err := domain.ParseLocale(lang)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	post, err := s.ports.Posts.GetPostBySlug(ctx, slug, locale)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting post: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     post.Body,
		}},
	}, nil
}

// postURI builds the resource URI of a post.
func postURI(lang domain.Locale, slug string) string {
	return uriScheme + "posts/" + lang.String() + "/" + slug
}

// extractPostRef splits a URI like issueblog://posts/{lang}/{slug}.
func extractPostRef(uri string) (lang, slug string) {
	const prefix = uriScheme + "posts/"

	if !strings.HasPrefix(uri, prefix) {
		return "", ""
	}

	lang, slug, ok := strings.Cut(strings.TrimPrefix(uri, prefix), "/")
	if !ok || strings.Contains(slug, "/") {
		return "", ""
	}
	return lang, slug
}
