// Package domain holds the core types of reqs: manifests, import specifiers,
// name and file sets, and the classification of declared dependencies.
package domain

const (
	// ManifestFileName is the package manifest read from the package root.
	ManifestFileName = "package.json"

	// ConfigFileName is the optional configuration file read from the package root.
	ConfigFileName = ".reqs.yaml"

	// DefaultEntryPoint is used when the manifest has no main field.
	DefaultEntryPoint = "index.js"
)
