package fs

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileLister = (*Lister)(nil)

// Lister enumerates package source files on top of a Walker.
type Lister struct {
	walker *Walker
}

// NewLister creates a new Lister.
func NewLister(walker *Walker) *Lister {
	return &Lister{walker: walker}
}

// List returns the sorted, normalized paths of the source files below root.
func (l *Lister) List(ctx context.Context, root string, exclude, extensions []string) ([]string, error) {
	absRoot, err := domain.NormalizePath(root)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrEnumeration, err), "path", root)
	}

	var files []string
	for path, walkErr := range l.walker.WalkFiles(absRoot, exclude) {
		if walkErr != nil {
			return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrEnumeration, walkErr), "path", absRoot)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !domain.HasExtension(path, extensions) {
			continue
		}
		normalized, err := domain.NormalizePath(path)
		if err != nil {
			return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrEnumeration, err), "path", path)
		}
		files = append(files, normalized)
	}

	slices.Sort(files)
	return files, nil
}
