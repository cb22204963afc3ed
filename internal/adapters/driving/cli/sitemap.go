package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/issueblog/internal/adapters/driving/httpapi"
)

var sitemapBaseURL string

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Print the site map as XML",
	Long: `Prints a sitemaps.org document listing the site root and every post in
every language. The base URL defaults to the site.base_url setting.`,
	Args: cobra.NoArgs,
	RunE: runSitemap,
}

func init() {
	sitemapCmd.Flags().StringVar(&sitemapBaseURL, "base-url", "", "public site URL (overrides site.base_url)")
	rootCmd.AddCommand(sitemapCmd)
}

func runSitemap(cmd *cobra.Command, _ []string) error {
	if err := requirePosts(); err != nil {
		return err
	}

	baseURL := sitemapBaseURL
	if baseURL == "" && settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return err
		}
		baseURL = settings.BaseURL
	}

	entries, err := postService.Sitemap(cmd.Context(), baseURL)
	if err != nil {
		return err
	}
	return httpapi.WriteSitemap(cmd.OutOrStdout(), entries)
}
