package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/issueblog/internal/core/ports/driving"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change issueblog settings.

Settings are read from defaults, then the config file, then environment
variables. Every key can be overridden by ISSUEBLOG_<KEY>, for example
ISSUEBLOG_GITHUB_OWNER; REPO_OWNER, REPO_NAME and GITHUB_TOKEN are also
honoured.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-token",
	Short: "Store the GitHub access token",
	Long: `Prompts for a GitHub personal access token and stores it in the config
file. Input is hidden when reading from a terminal.`,
	Args: cobra.NoArgs,
	RunE: runConfigSetToken,
}

// tokenInput is read by set-token when stdin is not a terminal.
var tokenInput io.Reader = os.Stdin

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetTokenCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	for _, e := range settingsService.Entries() {
		value := e.Value
		switch {
		case e.Secret && value != "":
			value = maskToken(value)
		case value == "":
			value = "(not set)"
		}
		cmd.Printf("  %-18s %-40s %s\n", e.Key, value, sourceLabel(e))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s\n", strings.ToLower(args[0]))
	return nil
}

func runConfigSetToken(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("GitHub token: ")
	token := readSecret(tokenInput)
	cmd.Println()
	if token == "" {
		return errors.New("no token entered")
	}

	if err := settingsService.SetToken(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	cmd.Printf("Token saved (%s)\n", maskToken(token))
	return nil
}

// readSecret reads one line, without echo when r is a terminal.
func readSecret(r io.Reader) string {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	line, _ := bufio.NewReader(r).ReadString('\n')
	return strings.TrimSpace(line)
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// sourceLabel renders where a value came from.
func sourceLabel(e driving.SettingEntry) string {
	return "[" + string(e.Source) + "]"
}
