package ports

import "context"

// ImportExtractor finds the module specifiers a source file imports.
//
//go:generate mockgen -source=import_extractor.go -destination=mocks/mock_import_extractor.go -package=mocks
type ImportExtractor interface {
	// Extract returns the specifiers of every require, import, export-from and
	// dynamic import found in src, in source order. Duplicates are allowed.
	Extract(ctx context.Context, path string, src []byte) ([]string, error)
}
