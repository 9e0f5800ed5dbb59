package ports

// Logger is the diagnostic sink shared by the adapters and the engine.
// Reports go to stdout through a renderer; everything here goes to stderr.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug is shown only in verbose mode.
	Debug(msg string)
	Info(msg string)
	// Warn carries best-effort problems such as unresolved local imports.
	Warn(msg string)
	// Error renders the full error chain including zerr metadata.
	Error(err error)
}
