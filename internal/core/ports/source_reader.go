package ports

// SourceReader reads source files.
//
//go:generate mockgen -source=source_reader.go -destination=mocks/mock_source_reader.go -package=mocks
type SourceReader interface {
	// ReadFile returns the contents of path. Errors wrap domain.ErrFileRead.
	ReadFile(path string) ([]byte, error)
}
