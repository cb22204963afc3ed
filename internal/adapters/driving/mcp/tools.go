package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

// ListPostsInput is the input schema for the list_posts tool.
type ListPostsInput struct {
	Lang    string `json:"lang,omitempty" jsonschema:"language code: zh, en or ja (default zh)"`
	Page    int    `json:"page,omitempty" jsonschema:"1-based page number (default 1)"`
	PerPage int    `json:"per_page,omitempty" jsonschema:"posts per page, at most 100 (default 100)"`
}

// ListPostsOutput is the output schema for the list_posts tool.
type ListPostsOutput struct {
	Posts []PostSummary `json:"posts"`
	Count int           `json:"count"`
}

// PostSummary is a post without its body.
type PostSummary struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Lang       string   `json:"lang"`
	Excerpt    string   `json:"excerpt"`
	CoverImage string   `json:"cover_image,omitempty"`
	Labels     []string `json:"labels,omitempty"`
	CreatedAt  string   `json:"created_at"`
	URI        string   `json:"uri"`
}

// PostInput selects one post.
type PostInput struct {
	Slug string `json:"slug" jsonschema:"the post slug"`
	Lang string `json:"lang,omitempty" jsonschema:"language code: zh, en or ja (default zh)"`
}

// GetPostOutput is the output schema for the get_post tool.
type GetPostOutput struct {
	Post    PostSummary `json:"post"`
	Body    string      `json:"body"`
	HTMLURL string      `json:"html_url"`
}

// GetHeadingsOutput is the output schema for the get_headings tool.
type GetHeadingsOutput struct {
	Headings []domain.Heading `json:"headings"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_posts",
		Description: "List blog posts in a language, newest first",
	}, s.handleListPosts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_post",
		Description: "Get a blog post's markdown body and metadata by slug",
	}, s.handleGetPost)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_headings",
		Description: "Get the table of contents of a blog post",
	}, s.handleGetHeadings)
}

func (s *Server) handleListPosts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListPostsInput,
) (*mcp.CallToolResult, ListPostsOutput, error) {
	locale, err := parseLang(input.Lang)
	if err != nil {
		return nil, ListPostsOutput{}, err
	}

	posts, err := s.ports.Posts.ListPosts(ctx, domain.PageRequest{
		Locale:   locale,
		Page:     input.Page,
		PageSize: input.PerPage,
	})
	if err != nil {
		return nil, ListPostsOutput{}, err
	}

	output := ListPostsOutput{
		Posts: make([]PostSummary, len(posts)),
		Count: len(posts),
	}
	for i := range posts {
		output.Posts[i] = summarize(&posts[i])
	}
	return nil, output, nil
}

func (s *Server) handleGetPost(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PostInput,
) (*mcp.CallToolResult, GetPostOutput, error) {
	locale, err := parseLang(input.Lang)
	if err != nil {
		return nil, GetPostOutput{}, err
	}

	post, err := s.ports.Posts.GetPostBySlug(ctx, input.Slug, locale)
	if err != nil {
		return nil, GetPostOutput{}, err
	}

	return nil, GetPostOutput{
		Post:    summarize(post),
		Body:    post.Body,
		HTMLURL: post.HTMLURL,
	}, nil
}

func (s *Server) handleGetHeadings(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PostInput,
) (*mcp.CallToolResult, GetHeadingsOutput, error) {
	locale, err := parseLang(input.Lang)
	if err != nil {
		return nil, GetHeadingsOutput{}, err
	}

	headings, err := s.ports.Posts.Headings(ctx, input.Slug, locale)
	if err != nil {
		return nil, GetHeadingsOutput{}, err
	}
	return nil, GetHeadingsOutput{Headings: headings}, nil
}

// parseLang parses an optional language code.
func parseLang(lang string) (domain.Locale, error) {
	if lang == "" {
		return domain.DefaultLocale, nil
	}
	return domain.ParseLocale(lang)
}

func summarize(p *domain.Post) PostSummary {
	return PostSummary{
		Slug:       p.Slug,
		Title:      p.Title,
		Lang:       p.Lang.String(),
		Excerpt:    p.Excerpt(),
		CoverImage: p.CoverImage,
		Labels:     p.LabelNames(),
		CreatedAt:  p.CreatedAt.Format("2006-01-02"),
		URI:        postURI(p.Lang, p.Slug),
	}
}
