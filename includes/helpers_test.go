package includes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// canonicalTempDir returns a temporary directory with symlinks resolved,
// so expectations compare equal to canonical paths (macOS /var -> /private/var).
func canonicalTempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// createFile creates a file with content, creating parent directories as needed.
func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	filePath := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644), "failed to create file %s", name)
	return filePath
}

func createDir(t *testing.T, dir, name string) string {
	t.Helper()

	dirPath := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(dirPath, 0o755))
	return dirPath
}

func canonical(path string) CanonicalPath {
	return CanonicalPath(filepath.Clean(path))
}
