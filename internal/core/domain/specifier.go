package domain

import "strings"

// SpecifierKind classifies an import specifier.
type SpecifierKind int

const (
	// SpecifierLocal refers to a file inside the package ("./x", "../x", "/abs/x").
	SpecifierLocal SpecifierKind = iota
	// SpecifierBuiltin refers to a Node.js core module.
	SpecifierBuiltin
	// SpecifierExternal refers to a third-party package.
	SpecifierExternal
)

// String returns the lower-case name of the kind.
func (k SpecifierKind) String() string {
	switch k {
	case SpecifierLocal:
		return "local"
	case SpecifierBuiltin:
		return "builtin"
	case SpecifierExternal:
		return "external"
	default:
		return "unknown"
	}
}

const nodeScheme = "node:"

// IsLocal reports whether spec refers to a file rather than a package.
func IsLocal(spec string) bool {
	return strings.HasPrefix(spec, ".") || strings.HasPrefix(spec, "/")
}

// PackageName reduces a non-local specifier to the package it names:
// "lodash/fp" becomes "lodash" and "@scope/pkg/sub" becomes "@scope/pkg".
func PackageName(spec string) string {
	parts := strings.SplitN(spec, "/", 3)
	if strings.HasPrefix(spec, "@") && len(parts) >= 2 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}

// ClassifySpecifier determines the kind of spec and, for builtin and external
// specifiers, the module name it refers to. Local specifiers return an empty name.
func ClassifySpecifier(spec string, builtins Builtins) (SpecifierKind, string) {
	if IsLocal(spec) {
		return SpecifierLocal, ""
	}

	if rest, ok := strings.CutPrefix(spec, nodeScheme); ok {
		return SpecifierBuiltin, rest
	}

	if builtins.Has(spec) {
		return SpecifierBuiltin, spec
	}

	name := PackageName(spec)
	if builtins.Has(name) {
		return SpecifierBuiltin, name
	}

	return SpecifierExternal, name
}
