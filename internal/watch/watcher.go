// Package watch re-runs generation when Go sources change.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period that must follow the last change
// before a run starts.
const DefaultDebounce = 200 * time.Millisecond

// Config configures the watcher.
type Config struct {
	// Root is the directory tree to watch.
	Root string
	// Suffix marks generated files; changes to them never trigger a run.
	Suffix string
	// Debounce is the quiet period after the last change before running.
	Debounce time.Duration
	// Logger for logging events.
	Logger *slog.Logger
}

// RunFunc is called with the changed paths, sorted, once no further change
// has arrived for the debounce period.
type RunFunc func(ctx context.Context, changed []string) error

// Watcher watches a source tree and calls a RunFunc with debounced
// batches of changed Go files. Calls never overlap; changes arriving
// during a call are batched into the next one.
type Watcher struct {
	config Config
	fsw    *fsnotify.Watcher
	logger *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op // path → most recent operation
}

// New creates a watcher with watches on every directory under the root
// already in place.
func New(config Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}

	w := &Watcher{
		config:  config,
		fsw:     fsw,
		logger:  config.Logger,
		pending: make(map[string]fsnotify.Op),
	}

	if err := w.addRecursive(config.Root); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return w, nil
}

// Run processes events until ctx is done. Errors returned by fn are logged
// and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context, fn RunFunc) error {
	defer w.fsw.Close()

	// Every relevant change restarts the timer; timerC is nil while
	// nothing is pending.
	timer := time.NewTimer(w.config.Debounce)
	timer.Stop()

	defer timer.Stop()

	var timerC <-chan time.Time

	w.logger.Info("watching for changes", "root", w.config.Root, "debounce", w.config.Debounce)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			if w.handle(event) {
				timer.Reset(w.config.Debounce)
				timerC = timer.C
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}

			w.logger.Error("watcher error", "error", err)

		case <-timerC:
			timerC = nil

			changed := w.drain()
			if len(changed) == 0 {
				continue
			}

			w.logger.Debug("running after changes", "files", len(changed))

			if err := fn(ctx, changed); err != nil {
				w.logger.Error("run failed", "error", err)
			}
		}
	}
}

// Close stops watching without running.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// handle records a relevant change and reports whether it did.
func (w *Watcher) handle(event fsnotify.Event) bool {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}

			return false
		}
	}

	if !w.relevant(event.Name) {
		return false
	}

	w.pendingMu.Lock()
	w.pending[event.Name] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("file change detected", "path", event.Name, "op", event.Op.String())

	return true
}

// relevant reports whether a change to path can affect generation.
func (w *Watcher) relevant(path string) bool {
	if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
		return false
	}

	return w.config.Suffix == "" || !strings.HasSuffix(path, w.config.Suffix)
}

// drain returns and clears the pending paths.
func (w *Watcher) drain() []string {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if len(w.pending) == 0 {
		return nil
	}

	paths := slices.Sorted(maps.Keys(w.pending))
	clear(w.pending)

	return paths
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && skipDir(d.Name()) {
			return filepath.SkipDir
		}

		if err := w.fsw.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		}

		return nil
	})
}

// skipDir mirrors the directories the go tool ignores.
func skipDir(name string) bool {
	return name == "vendor" || name == "testdata" ||
		strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
