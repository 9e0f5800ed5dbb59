package ports

// ModuleResolver maps local specifiers to files.
//
//go:generate mockgen -source=module_resolver.go -destination=mocks/mock_module_resolver.go -package=mocks
type ModuleResolver interface {
	// Resolve returns the absolute, cleaned path that specifier refers to when
	// imported from a file in baseDir. Extensions are tried after the
	// built-in ones. Errors wrap domain.ErrResolution.
	Resolve(specifier, baseDir string, extensions []string) (string, error)
}
