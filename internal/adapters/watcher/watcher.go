// Package watcher reports file system changes below a package root.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/reqs/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// alwaysSkipped are directories that are never watched.
var alwaysSkipped = map[string]bool{
	".git": true,
	".jj":  true,
}

const eventChannelBuffer = 100

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	exclude   []string
	changes   chan ports.Change
	errs      func(error)
	stopOnce  sync.Once
}

// NewWatcher creates a watcher skipping directories whose name matches one of exclude.
func NewWatcher(exclude []string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: w,
		exclude:   exclude,
		changes:   make(chan ports.Change, eventChannelBuffer),
	}, nil
}

// OnError sets a callback for errors reported by the underlying watcher.
func (w *Watcher) OnError(fn func(error)) *Watcher {
	w.errs = fn
	return w
}

// Start adds root and every non-excluded directory below it, then begins forwarding events.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range w.directories(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop releases the underlying watcher.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		err = w.fsWatcher.Close()
	})
	return err
}

// Changes yields events until the watcher stops or its context is done.
func (w *Watcher) Changes() iter.Seq[ports.Change] {
	return func(yield func(ports.Change) bool) {
		for change := range w.changes {
			if !yield(change) {
				return
			}
		}
	}
}

// directories yields root and every directory below it that is not skipped.
func (w *Watcher) directories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable directories are not watched.
				return nil //nolint:nilerr // skipping is the intended handling
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && w.shouldSkip(d.Name()) {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) shouldSkip(name string) bool {
	if alwaysSkipped[name] {
		return true
	}
	for _, pattern := range w.exclude {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.changes)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			change, ok := convertEvent(event)
			if !ok {
				continue
			}

			// New directories are watched too.
			if change.Kind == ports.ChangeCreated {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !w.shouldSkip(info.Name()) {
					for dir := range w.directories(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}

			select {
			case w.changes <- change:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.errs != nil {
				w.errs(err)
			}
		}
	}
}

func convertEvent(event fsnotify.Event) (ports.Change, bool) {
	switch {
	case event.Has(fsnotify.Create):
		return ports.Change{Path: event.Name, Kind: ports.ChangeCreated}, true
	case event.Has(fsnotify.Write):
		return ports.Change{Path: event.Name, Kind: ports.ChangeModified}, true
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return ports.Change{Path: event.Name, Kind: ports.ChangeRemoved}, true
	default:
		return ports.Change{}, false
	}
}
