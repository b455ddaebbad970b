// Package watcher reports changes to a single configuration file.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bethropolis/flatland/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is the quiet period before a burst of writes is reported.
const DefaultDelay = 150 * time.Millisecond

// Watcher calls a function when one file is written or replaced.
// The parent directory is watched so editors that save by renaming a
// temporary file over the original are still noticed.
type Watcher struct {
	path     string
	delay    time.Duration
	onChange func(path string)

	fsw      *fsnotify.Watcher
	debounce Debouncer
}

// New starts watching path. onChange runs on its own goroutine after each
// debounced burst of changes.
func New(path string, delay time.Duration, onChange func(path string)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve '%s': %w", path, err)
	}
	if delay <= 0 {
		delay = DefaultDelay
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch '%s': %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, delay: delay, onChange: onChange, fsw: fsw}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.debounce.Stop()
	logger.DebugTagf("reload", "Watching '%s' for changes", w.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			logger.DebugTagf("reload", "File event %v", ev)
			w.debounce.Debounce(w.delay, func() { w.onChange(w.path) })

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("Watcher: error watching '%s': %v", w.path, err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// Close releases the underlying file watcher.
func (w *Watcher) Close() error {
	w.debounce.Stop()
	return w.fsw.Close()
}
