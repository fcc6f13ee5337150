// Package watch re-runs a callback when any of a set of files changes.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"modelgen/internal/logger"
)

// DefaultDebounce collapses bursts of editor writes into one change.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reports changes to specific files. Parent directories are watched
// so that files replaced by rename (as most editors save) keep being seen.
type Watcher struct {
	files    map[string]struct{}
	debounce time.Duration
	onChange func()

	fs *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
}

// New watches paths and calls onChange at most once per debounce window.
func New(paths []string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}

	w := &Watcher{
		files:    make(map[string]struct{}, len(paths)),
		debounce: debounce,
		onChange: onChange,
		fs:       fsw,
	}

	dirs := make(map[string]struct{})

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsw.Close()
			return nil, errors.Wrapf(err, "resolving %s", p)
		}

		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		logger.Logger.Debugw("watching directory", "dir", dir)

		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, errors.Wrapf(err, "failed to add watcher for %s", dir)
		}
	}

	return w, nil
}

// Run dispatches events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}

			if !w.relevant(event) {
				continue
			}

			logger.Logger.Debugw("file event", "op", event.Op.String(), "file", event.Name)
			w.debounceChange()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}

			logger.Logger.Warnw("watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}

	_, ok := w.files[abs]

	return ok
}

func (w *Watcher) debounceChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, w.onChange)
}

// Close stops watching and cancels a pending callback.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	return w.fs.Close()
}
