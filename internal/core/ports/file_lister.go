package ports

import "context"

// FileLister enumerates the source files of a package.
//
//go:generate mockgen -source=file_lister.go -destination=mocks/mock_file_lister.go -package=mocks
type FileLister interface {
	// List returns the absolute, cleaned paths of all files under root whose
	// extension is in extensions, skipping directories matching exclude.
	// Errors wrap domain.ErrEnumeration.
	List(ctx context.Context, root string, exclude, extensions []string) ([]string, error)
}
