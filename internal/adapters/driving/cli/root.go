// Package cli implements the issueblog command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/issueblog/internal/core/ports/driving"
	"github.com/custodia-labs/issueblog/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services are the driving ports the commands call.
type Services struct {
	Posts    driving.PostService
	Export   driving.ExportService
	Settings driving.SettingsService

	// Unavailable explains why Posts and Export are nil, typically a
	// missing repository setting. Config commands still work.
	Unavailable error

	// Background is started by "serve" alongside the HTTP server and
	// stops when the server does.
	Background func(ctx context.Context)
}

var (
	postService     driving.PostService
	exportService   driving.ExportService
	settingsService driving.SettingsService
	unavailableErr  error
	backgroundFunc  func(ctx context.Context)
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "issueblog",
	Short: "Serve a blog from GitHub issues",
	Long: `issueblog turns labelled GitHub issues into blog posts.

Each issue carrying the blog label becomes a post. Metadata comes from a
YAML front-matter block, GitHub issue-form sections, or the issue itself.
Posts can be listed and read from the command line, served over a JSON
HTTP API, or exposed to AI assistants over MCP.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	postService = s.Posts
	exportService = s.Export
	settingsService = s.Settings
	unavailableErr = s.Unavailable
	backgroundFunc = s.Background
}

// SetVersion sets the version reported by "issueblog version".
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// requirePosts returns an error when the post service is not wired.
func requirePosts() error {
	if postService != nil {
		return nil
	}
	if unavailableErr != nil {
		return fmt.Errorf("post service not available: %w", unavailableErr)
	}
	return errors.New("post service not configured")
}
