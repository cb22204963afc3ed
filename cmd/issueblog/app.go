package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/issueblog/internal/adapters/driven/auth"
	"github.com/custodia-labs/issueblog/internal/adapters/driven/cache"
	"github.com/custodia-labs/issueblog/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/issueblog/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/issueblog/internal/connectors/filesystem"
	"github.com/custodia-labs/issueblog/internal/connectors/github"
	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
	"github.com/custodia-labs/issueblog/internal/core/services"
	"github.com/custodia-labs/issueblog/internal/logger"
	"github.com/custodia-labs/issueblog/internal/normalisers/post"
)

// app holds the wired services and the resources they own.
type app struct {
	posts  *services.PostService
	export *services.ExportService

	dumps   *filesystem.Source
	cached  *cache.Source
	closers []io.Closer
}

// newApp wires the issue source, cache and services from settings.
func newApp(settings *domain.Settings) (*app, error) {
	a := &app{}

	var source driven.IssueSource
	switch settings.Source {
	case domain.SourceTypeFilesystem:
		a.dumps = filesystem.New(settings.SourcePath)
		a.closers = append(a.closers, a.dumps)
		source = a.dumps
	default:
		cfg, err := github.ConfigFromSettings(settings)
		if err != nil {
			return nil, err
		}
		client := github.NewClient(cfg, auth.NewTokenProvider(settings))
		source = github.NewSource(client)
	}

	// Export always reads the tracker directly so dumps are never stale.
	a.export = services.NewExportService(source, settings)

	store, err := a.issueCache(settings)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if store != nil {
		a.cached = cache.NewSource(source, store, settings.CacheTTL)
		source = a.cached
	}

	a.posts = services.NewPostService(source, post.New(), settings)
	logger.Debug("Wired %s source with %s cache", settings.Source, settings.Cache)
	return a, nil
}

// issueCache opens the configured cache backend. It returns nil when
// caching is disabled.
func (a *app) issueCache(settings *domain.Settings) (driven.IssueCache, error) {
	switch settings.Cache {
	case domain.CacheBackendNone:
		return nil, nil
	case domain.CacheBackendSQLite:
		store, err := sqlite.NewStore(settings.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		a.closers = append(a.closers, store)
		return store.IssueCache(), nil
	default:
		return memory.NewIssueCache(), nil
	}
}

// watch drops cached pages whenever a dump file changes. It returns when
// ctx is done and is a no-op unless dumps are served through a cache.
func (a *app) watch(ctx context.Context) {
	if a.dumps == nil || a.cached == nil {
		return
	}
	changes, err := a.dumps.Watch(ctx)
	if err != nil {
		logger.Warn("Cannot watch %s: %v", a.dumps.Root(), err)
		return
	}
	for change := range changes {
		logger.Info("Dump %s: %s", change.Type, change.Path)
		if err := a.cached.Invalidate(ctx); err != nil {
			logger.Warn("Cache invalidation failed: %v", err)
		}
	}
}

// Close releases every resource in reverse order of acquisition.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
