package domain

import "path/filepath"

// NormalizePath turns path into the canonical form used for file identity:
// absolute and cleaned. Relative paths are resolved against the working directory.
func NormalizePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// HasExtension reports whether path ends in one of the given extensions.
func HasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}
