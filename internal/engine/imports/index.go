// Package imports memoizes the import specifiers of source files for one analysis run.
package imports

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
)

type entry struct {
	once  sync.Once
	specs []string
	err   error
}

// Index reads and parses each file at most once, however many callers ask for it.
type Index struct {
	reader     ports.SourceReader
	extractor  ports.ImportExtractor
	extensions []string

	mu      sync.Mutex
	entries map[string]*entry
}

// NewIndex creates an index that parses files whose extension is in extensions,
// and files without an extension such as bin scripts. Other files have no specifiers.
func NewIndex(reader ports.SourceReader, extractor ports.ImportExtractor, extensions []string) *Index {
	return &Index{
		reader:     reader,
		extractor:  extractor,
		extensions: extensions,
		entries:    make(map[string]*entry),
	}
}

// Specifiers returns the non-empty import specifiers of path in source order.
// The returned slice must not be modified.
func (x *Index) Specifiers(ctx context.Context, path string) ([]string, error) {
	e := x.entry(path)
	e.once.Do(func() {
		e.specs, e.err = x.load(ctx, path)
	})
	return e.specs, e.err
}

// Len returns the number of files requested so far.
func (x *Index) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.entries)
}

func (x *Index) entry(path string) *entry {
	x.mu.Lock()
	defer x.mu.Unlock()

	e, ok := x.entries[path]
	if !ok {
		e = &entry{}
		x.entries[path] = e
	}
	return e
}

func (x *Index) load(ctx context.Context, path string) ([]string, error) {
	if filepath.Ext(path) != "" && !domain.HasExtension(path, x.extensions) {
		return nil, nil
	}

	src, err := x.reader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	specs, err := x.extractor.Extract(ctx, path, src)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrFileRead, err), "path", path)
	}

	return slices.DeleteFunc(specs, func(s string) bool { return s == "" }), nil
}
