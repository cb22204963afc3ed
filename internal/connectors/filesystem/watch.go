package filesystem

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/issueblog/internal/logger"
)

// ChangeType describes what happened to a dump file.
type ChangeType int

// Change types.
const (
	ChangeCreated ChangeType = iota
	ChangeUpdated
	ChangeDeleted
)

// String returns the string representation.
func (t ChangeType) String() string {
	switch t {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	default:
		return "deleted"
	}
}

// Change is one dump file change.
type Change struct {
	Path string
	Type ChangeType
}

// Watch reports changes to dump files until ctx is cancelled or the source
// is closed. The returned channel is closed when watching stops.
func (s *Source) Watch(ctx context.Context) (<-chan Change, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = append(s.cancel, cancel)
	s.mu.Unlock()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.root); err != nil {
		cancel()
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", s.root, err)
	}

	changes := make(chan Change)
	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				change := handleFsEvent(event)
				if change == nil {
					continue
				}
				logger.Debug("Dump %s: %s", change.Type, change.Path)
				select {
				case changes <- *change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watch error on %s: %v", s.root, err)
			}
		}
	}()

	return changes, nil
}

// handleFsEvent maps a watcher event onto a dump change. Events for
// directories, hidden files and non-JSON files are ignored.
func handleFsEvent(event fsnotify.Event) *Change {
	if !isDumpFile(filepath.Base(event.Name)) {
		return nil
	}
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &Change{Path: event.Name, Type: ChangeDeleted}
	case event.Has(fsnotify.Create):
		return &Change{Path: event.Name, Type: ChangeCreated}
	case event.Has(fsnotify.Write):
		return &Change{Path: event.Name, Type: ChangeUpdated}
	default:
		return nil
	}
}
