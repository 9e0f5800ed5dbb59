package domain

// Manifest holds what a package declares about itself.
type Manifest struct {
	// Name is the package name, empty when the manifest has none.
	Name string
	// Dependencies are the runtime dependencies.
	Dependencies NameSet
	// DevDependencies are the development-only dependencies.
	DevDependencies NameSet
	// EntryPoints are root-relative paths of the files the package ships:
	// main first, followed by every bin target.
	EntryPoints []string
}

// Declared returns every declared dependency name, runtime and dev alike.
func (m *Manifest) Declared() NameSet {
	return m.Dependencies.Union(m.DevDependencies)
}
