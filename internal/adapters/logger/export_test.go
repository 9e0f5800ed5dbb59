package logger

// Exported for white-box tests of the error chain formatting.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
	FromEnv                     = fromEnv
)
