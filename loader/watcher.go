package loader

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is how long the watcher waits after the last file event
// before reloading, so editors that write in several steps trigger one reload.
const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a rules file into a Registry whenever it changes. A file
// that fails to parse or validate is logged and skipped, leaving the
// previously active set in place.
type Watcher struct {
	path     string
	registry *Registry
	logger   *slog.Logger
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given rules file.
func NewWatcher(path string, registry *Registry, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	// Watch the parent directory rather than the file itself: editors and
	// atomic writers replace the inode, which drops a file-level watch.
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		path:     path,
		registry: registry,
		logger:   logger,
		debounce: defaultDebounce,
		fsw:      fsw,
	}, nil
}

// Watch processes file events until the context is cancelled. It blocks, so
// callers run it in its own goroutine.
func (w *Watcher) Watch(ctx context.Context) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	w.logger.Info("watching rules file", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.shouldProcess(event) {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Warn("rules file watch error", "error", err)

		case <-timer.C:
			w.reload()
		}
	}
}

// shouldProcess filters directory events down to mutations of the rules file.
func (w *Watcher) shouldProcess(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	set, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("rules file reload failed, keeping active set",
			"path", w.path,
			"error", err,
		)
		return
	}

	if err := w.registry.Replace(set); err != nil {
		w.logger.Warn("rules file rejected, keeping active set",
			"path", w.path,
			"error", err,
		)
		return
	}

	w.logger.Info("rules file reloaded", "path", w.path, "rules", len(set))
}
