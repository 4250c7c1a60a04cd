package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reloader is implemented by Repository.
type Reloader interface {
	Reload() error
}

// Watcher reloads content when JSON files in the content directory change.
// Bursts of events are collapsed into one reload after the debounce delay.
type Watcher struct {
	dir      string
	target   Reloader
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
}

// NewWatcher starts watching dir. Call Run to process events and Close (or
// cancel Run's context) to release the underlying watcher.
func NewWatcher(dir string, target Reloader, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory, not the files: editors often replace files via rename.
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:      dir,
		target:   target,
		debounce: debounce,
		logger:   logger.With(slog.String("component", "content_watcher")),
		fsw:      fsw,
	}, nil
}

// Run blocks until ctx is cancelled, reloading content after changes.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.fsw.Close() }()

	// Timer semantics from Go 1.23 on: Stop and Reset never leave a stale
	// value in timer.C, so no draining is needed.
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	w.logger.Info("watching content directory", slog.String("dir", w.dir))

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("content change detected",
				slog.String("file", filepath.Base(event.Name)),
				slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", slog.String("error", err.Error()))

		case <-timer.C:
			// Reload logs its own failures and keeps the previous snapshot.
			_ = w.target.Reload()
		}
	}
}

// Close stops watching without waiting for Run to return.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func relevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, ".json") {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}
