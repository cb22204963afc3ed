package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/issueblog/internal/adapters/driving/httpapi"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serves posts as JSON:

  GET /api/{lang}/posts?page=&per_page=
  GET /api/{lang}/posts/{slug}
  GET /api/{lang}/posts/{slug}/headings
  GET /sitemap.xml
  GET /health

The port defaults to the http.port setting.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP port (overrides http.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := requirePosts(); err != nil {
		return err
	}
	if settingsService == nil {
		return fmt.Errorf("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}
	port := settings.HTTPPort
	if servePort > 0 {
		port = servePort
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(cmd.OutOrStdout(), &slog.HandlerOptions{Level: level}))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if backgroundFunc != nil {
		go backgroundFunc(ctx)
	}

	server := httpapi.NewServer(httpapi.Config{Port: port, BaseURL: settings.BaseURL}, postService, log)
	return server.Run(ctx)
}
