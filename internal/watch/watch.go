// Package watch reruns a callback when definition files change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DefaultPattern matches YAML and JSON files at any depth.
const DefaultPattern = "**/*.{yml,yaml,json}"

// Config configures a Watcher.
type Config struct {
	// Root is watched recursively. Hidden directories are skipped.
	Root string
	// Pattern is a doublestar pattern matched against slash-separated
	// paths relative to Root.
	Pattern string
	// DebounceDelay is the quiet period after the last matching event
	// before the callback runs. A burst of events yields one callback.
	DebounceDelay time.Duration
	Logger        *slog.Logger
}

// Func is called with the sorted relative paths that changed.
type Func func(ctx context.Context, changed []string) error

// Watcher watches a directory tree for changes to matching files.
type Watcher struct {
	config  Config
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	pending map[string]fsnotify.Op
}

// New creates a Watcher. Call Run to start it.
func New(config Config) (*Watcher, error) {
	if config.Pattern == "" {
		config.Pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(config.Pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", config.Pattern)
	}
	if config.DebounceDelay == 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		config:  config,
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]fsnotify.Op),
	}, nil
}

// Run watches until ctx is done. Callback errors are logged and do not
// stop the watch.
func (w *Watcher) Run(ctx context.Context, fn Func) error {
	defer func() { _ = w.watcher.Close() }()

	if err := w.addWatchesRecursive(w.config.Root); err != nil {
		return err
	}
	w.logger.Info("watching definitions", "root", w.config.Root, "pattern", w.config.Pattern)

	timer := time.NewTimer(w.config.DebounceDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.handleEvent(event) {
				timer.Reset(w.config.DebounceDelay)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)

		case <-timer.C:
			w.flush(ctx, fn)
		}
	}
}

func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
}

// handleEvent records a matching change and reports whether it did.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addWatchesRecursive(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}
			return false
		}
	}
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}

	rel, ok := w.match(event.Name)
	if !ok {
		return false
	}
	w.pending[rel] |= event.Op
	w.logger.Debug("definition change detected", "path", rel, "op", event.Op.String())
	return true
}

// match reports whether path, absolute or relative to the working
// directory, falls under Root and matches Pattern.
func (w *Watcher) match(path string) (string, bool) {
	rel, err := filepath.Rel(w.config.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	ok, err := doublestar.Match(w.config.Pattern, rel)
	return rel, err == nil && ok
}

func (w *Watcher) flush(ctx context.Context, fn Func) {
	if len(w.pending) == 0 {
		return
	}
	changed := make([]string, 0, len(w.pending))
	for rel := range w.pending {
		changed = append(changed, rel)
	}
	slices.Sort(changed)
	clear(w.pending)

	if err := fn(ctx, changed); err != nil {
		w.logger.Error("rebuild failed", "changed", changed, "error", err)
	}
}
