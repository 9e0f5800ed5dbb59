package fs

import (
	"fmt"
	"os"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceReader = (*Reader)(nil)

// Reader reads source files from disk.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile returns the contents of path.
func (r *Reader) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrFileRead, err), "path", path)
	}
	return data, nil
}
