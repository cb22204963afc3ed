package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/issueblog/internal/connectors/filesystem"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export labelled issues as JSON files",
	Long: `Writes every open issue carrying the blog label to dir, one JSON file
per issue. Point source.type=filesystem and source.path at the directory to
preview the blog offline.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportService == nil {
		if unavailableErr != nil {
			return fmt.Errorf("export service not available: %w", unavailableErr)
		}
		return errors.New("export service not configured")
	}

	sink := filesystem.New(args[0])
	defer sink.Close()

	n, err := exportService.Export(cmd.Context(), sink)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Exported %d issues to %s\n", n, args[0])
	return nil
}
