package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/issueblog/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can list and
read blog posts.

By default the server speaks JSON-RPC over stdio. Use --port to serve the
streamable HTTP transport instead.

Tools:     list_posts, get_post, get_headings
Resources: issueblog://posts/{lang}/{slug}

Examples:
  # Stdio mode
  issueblog mcp serve

  # HTTP mode
  issueblog mcp serve --port 8081`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if err := requirePosts(); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Posts: postService})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
