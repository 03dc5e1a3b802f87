package includes

import (
	"fmt"
	"path/filepath"
)

// CanonicalPath is the identity of a filesystem entry: absolute, symlink-resolved
// and cleaned. Two spellings of the same file always canonicalize to the same value,
// so CanonicalPath is safe to use as a map key.
type CanonicalPath string

// Canonicalize resolves path to its CanonicalPath. The entry must exist.
func Canonicalize(path string) (CanonicalPath, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks for %s: %w", path, err)
	}

	return CanonicalPath(filepath.Clean(resolved)), nil
}

func (p CanonicalPath) String() string {
	return string(p)
}

// Display returns the path with forward slashes, independent of the host separator.
func (p CanonicalPath) Display() string {
	return filepath.ToSlash(string(p))
}

// Dir returns the directory containing p. The parent of a canonical path is canonical.
func (p CanonicalPath) Dir() CanonicalPath {
	return CanonicalPath(filepath.Dir(string(p)))
}

// Base returns the last element of p.
func (p CanonicalPath) Base() string {
	return filepath.Base(string(p))
}

// join appends an include text written with forward slashes to p. An absolute
// include replaces p. The returned path is cleaned but not canonical.
func (p CanonicalPath) join(include string) string {
	native := filepath.FromSlash(include)
	if filepath.IsAbs(native) {
		return filepath.Clean(native)
	}
	return filepath.Join(string(p), native)
}

// displayToCanonical converts a forward-slash display string back to host form.
func displayToCanonical(display string) CanonicalPath {
	if display == "" {
		display = "/"
	}
	return CanonicalPath(filepath.FromSlash(display))
}

func (p CanonicalPath) less(other CanonicalPath) bool {
	return p < other
}
