// Package fs provides file system adapters for listing, reading and resolving package files.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// alwaysSkipped are VCS metadata directories that never hold package sources.
var alwaysSkipped = map[string]bool{
	".git": true,
	".jj":  true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root, skipping VCS metadata and any
// directory whose name matches one of the ignore patterns. The root itself is
// never skipped. Symlinks to regular files are yielded under the link path;
// symlinked directories are not followed.
// A walk error is yielded once and ends the iteration.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if !isRegularEntry(path, d) {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// isRegularEntry reports whether the entry is a regular file or a symlink to one.
// Dangling links are skipped.
func isRegularEntry(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (w *Walker) shouldSkipDir(name string, ignores []string) bool {
	if alwaysSkipped[name] {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
