package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

var (
	postLang    string
	postJSON    bool
	listPage    int
	listPerPage int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List blog posts",
	Long: `Lists one page of posts in a language, newest first.

A post is written in one language unless its body carries legacy
<!-- lang:xx --> markers, in which case it is listed in every language.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var getCmd = &cobra.Command{
	Use:   "get [slug]",
	Short: "Show a blog post",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var headingsCmd = &cobra.Command{
	Use:   "headings [slug]",
	Short: "Show a post's table of contents",
	Args:  cobra.ExactArgs(1),
	RunE:  runHeadings,
}

func init() {
	for _, cmd := range []*cobra.Command{listCmd, getCmd, headingsCmd} {
		cmd.Flags().StringVarP(&postLang, "lang", "l", string(domain.DefaultLocale), "language code (zh, en, ja)")
	}
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page number")
	listCmd.Flags().IntVarP(&listPerPage, "per-page", "n", domain.DefaultPageSize, "posts per page (max 100)")
	listCmd.Flags().BoolVar(&postJSON, "json", false, "output as JSON")
	getCmd.Flags().BoolVar(&postJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(headingsCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := requirePosts(); err != nil {
		return err
	}
	locale, err := domain.ParseLocale(postLang)
	if err != nil {
		return err
	}

	posts, err := postService.ListPosts(cmd.Context(), domain.PageRequest{
		Locale:   locale,
		Page:     listPage,
		PageSize: listPerPage,
	})
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	if postJSON {
		if posts == nil {
			posts = []domain.Post{}
		}
		return printJSON(cmd, posts)
	}

	if len(posts) == 0 {
		cmd.Println("No posts found.")
		return nil
	}
	for i := range posts {
		p := &posts[i]
		cmd.Printf("%s  %-30s  %s\n", p.CreatedAt.Format("2006-01-02"), p.Slug, p.Title)
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	if err := requirePosts(); err != nil {
		return err
	}
	locale, err := domain.ParseLocale(postLang)
	if err != nil {
		return err
	}

	post, err := postService.GetPostBySlug(cmd.Context(), args[0], locale)
	if err != nil {
		return err
	}

	if postJSON {
		return printJSON(cmd, post)
	}

	cmd.Printf("# %s\n\n", post.Title)
	cmd.Printf("Slug:      %s\n", post.Slug)
	cmd.Printf("Language:  %s\n", post.Lang)
	cmd.Printf("Published: %s\n", post.CreatedAt.Format("2006-01-02"))
	if post.CoverImage != "" {
		cmd.Printf("Cover:     %s\n", post.CoverImage)
	}
	if labels := post.LabelNames(); len(labels) > 0 {
		cmd.Printf("Labels:    %v\n", labels)
	}
	cmd.Printf("Summary:   %s\n", post.Excerpt())
	cmd.Println()
	cmd.Println(post.Body)
	return nil
}

func runHeadings(cmd *cobra.Command, args []string) error {
	if err := requirePosts(); err != nil {
		return err
	}
	locale, err := domain.ParseLocale(postLang)
	if err != nil {
		return err
	}

	headings, err := postService.Headings(cmd.Context(), args[0], locale)
	if err != nil {
		return err
	}

	if len(headings) == 0 {
		cmd.Println("No headings.")
		return nil
	}
	for _, h := range headings {
		indent := strings.Repeat("  ", max(h.Level-1, 0))
		cmd.Printf("%s- %s (#%s)\n", indent, h.Text, h.ID)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
