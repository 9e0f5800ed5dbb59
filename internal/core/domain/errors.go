package domain

import "go.trai.ch/zerr"

var (
	// ErrManifest is returned when package.json is missing, unreadable or malformed.
	ErrManifest = zerr.New("failed to load package manifest")

	// ErrFileRead is returned when a source file cannot be read or parsed for imports.
	ErrFileRead = zerr.New("failed to read source file")

	// ErrResolution is returned when a local import or entry point cannot be resolved to a file.
	ErrResolution = zerr.New("failed to resolve module")

	// ErrEnumeration is returned when the project tree cannot be listed.
	ErrEnumeration = zerr.New("failed to enumerate project files")

	// ErrConfigRead is returned when the configuration file exists but cannot be read.
	ErrConfigRead = zerr.New("failed to read configuration file")

	// ErrConfigParse is returned when the configuration file is not valid.
	ErrConfigParse = zerr.New("failed to parse configuration file")

	// ErrIssuesFound is returned in strict mode when the report contains at least one issue.
	ErrIssuesFound = zerr.New("dependency issues found")

	// ErrInvalidRoot is returned when the package root is not a directory.
	ErrInvalidRoot = zerr.New("package root is not a directory")
)
