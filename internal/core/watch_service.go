package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchService re-runs an audit whenever a definition file changes.
type WatchService struct {
	ui       UICallback
	debounce time.Duration
}

// NewWatchService creates a WatchService reporting through ui.
func NewWatchService(ui UICallback) *WatchService {
	if ui == nil {
		ui = &SilentUICallback{}
	}
	return &WatchService{ui: ui, debounce: watchDebounce}
}

// Watch blocks until ctx is cancelled, calling fn after each burst of writes
// to path. fn runs on the calling goroutine, so audits never overlap.
func (s *WatchService) Watch(ctx context.Context, path string, fn func() error) error {
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory too: editors often replace the file instead of writing it.
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", filepath.Dir(path), err)
	}

	s.ui.ShowInfo(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", path))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			Logger().Debug("definition changed", "path", path, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if _, err := os.Stat(path); err != nil {
				s.ui.ShowWarning("File Not Found", fmt.Sprintf("%s was deleted or is inaccessible", path))
				continue
			}
			s.ui.ShowInfo("Detected change to " + filepath.Base(path))
			if err := fn(); err != nil {
				s.ui.ShowError("Audit Failed", err.Error())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			Logger().Warn("watch error", "error", err)
		}
	}
}
