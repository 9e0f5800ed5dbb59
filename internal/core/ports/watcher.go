package ports

import (
	"context"
	"iter"
)

// ChangeKind describes what happened to a watched path.
type ChangeKind uint8

const (
	// ChangeCreated indicates a file or directory appeared.
	ChangeCreated ChangeKind = iota
	// ChangeModified indicates file contents changed.
	ChangeModified
	// ChangeRemoved indicates a file or directory was deleted or renamed away.
	ChangeRemoved
)

// Change is a single file system event below the watched root.
type Change struct {
	Path string
	Kind ChangeKind
}

// Watcher reports changes below a package root.
type Watcher interface {
	// Start begins watching root recursively. Events stop when ctx is done.
	Start(ctx context.Context, root string) error
	// Stop releases the underlying resources.
	Stop() error
	// Changes yields events until the watcher stops.
	Changes() iter.Seq[Change]
}

// WatcherFactory creates a Watcher that skips directories matching exclude.
type WatcherFactory func(exclude []string) (Watcher, error)
