// Command issueblog serves a blog whose posts are GitHub issues.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/issueblog/internal/adapters/driven/config/file"
	"github.com/custodia-labs/issueblog/internal/adapters/driving/cli"
	"github.com/custodia-labs/issueblog/internal/core/services"
	"github.com/custodia-labs/issueblog/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir, err := file.DefaultDir()
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	settingsService := services.NewSettingsService(store, os.Getenv)

	svcs := cli.Services{Settings: settingsService}

	settings, err := settingsService.Get()
	if err == nil {
		err = settings.Validate()
	}
	if err != nil {
		// Config commands must still run so the user can fix the settings.
		svcs.Unavailable = err
	} else {
		if settings.DataDir == "" {
			settings.DataDir = dir
		}
		a, err := newApp(settings)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := a.Close(); cerr != nil {
				logger.Warn("Closing: %v", cerr)
			}
		}()
		svcs.Posts = a.posts
		svcs.Export = a.export
		svcs.Background = a.watch
	}

	cli.SetVersion(version)
	cli.SetServices(svcs)
	return cli.Execute(ctx)
}
