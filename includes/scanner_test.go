package includes

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSourceFile(t *testing.T) {
	for _, name := range []string{"a.h", "a.hpp", "a.hxx", "a.hh", "a.c", "a.cpp", "a.cxx", "dir/a.b.h"} {
		assert.True(t, IsSourceFile(name), name)
	}
	for _, name := range []string{"a.H", "a.CPP", "a.cc", "a.inl", "a.txt", "Makefile", "a.h.bak"} {
		assert.False(t, IsSourceFile(name), name)
	}
}

func TestSourceExtensions_ReturnsCopy(t *testing.T) {
	extensions := SourceExtensions()
	extensions[0] = ".changed"

	assert.Equal(t, ".h", SourceExtensions()[0])
}

func TestScanner_Scan_CollectsRecognizedFilesRecursively(t *testing.T) {
	root := canonicalTempDir(t)
	main := createFile(t, root, "main.cpp", "")
	header := createFile(t, root, "lib/deep/util.h", "")
	createFile(t, root, "README.md", "")
	createFile(t, root, "lib/upper.H", "")

	scanner, err := NewScanner(nil, 0, nil)
	require.NoError(t, err)

	result, err := scanner.Scan([]string{root})

	require.NoError(t, err)
	assert.ElementsMatch(t, []CanonicalPath{canonical(main), canonical(header)}, result.Files)
	assert.Empty(t, result.InvalidRoots)
}

func TestScanner_Scan_MissingRootIsInvalidNotFatal(t *testing.T) {
	root := canonicalTempDir(t)
	header := createFile(t, root, "a.h", "")
	missing := filepath.Join(root, "does-not-exist")

	scanner, err := NewScanner(nil, 0, nil)
	require.NoError(t, err)

	result, err := scanner.Scan([]string{missing, root})

	require.NoError(t, err)
	assert.Equal(t, []CanonicalPath{canonical(header)}, result.Files)
	assert.Equal(t, []string{missing}, result.InvalidRoots)
}

func TestScanner_Scan_OverlappingRootsAreDeduplicated(t *testing.T) {
	root := canonicalTempDir(t)
	header := createFile(t, root, "sub/a.h", "")

	scanner, err := NewScanner(nil, 2, nil)
	require.NoError(t, err)

	result, err := scanner.Scan([]string{root, filepath.Join(root, "sub"), filepath.Join(root, "sub", "..", "sub")})

	require.NoError(t, err)
	assert.Equal(t, []CanonicalPath{canonical(header)}, result.Files)
}

func TestScanner_Scan_FileRoot(t *testing.T) {
	root := canonicalTempDir(t)
	header := createFile(t, root, "single.hpp", "")
	text := createFile(t, root, "notes.txt", "")

	scanner, err := NewScanner(nil, 0, nil)
	require.NoError(t, err)

	result, err := scanner.Scan([]string{header, text})

	require.NoError(t, err)
	assert.Equal(t, []CanonicalPath{canonical(header)}, result.Files)
	assert.Empty(t, result.InvalidRoots)
}

func TestScanner_Scan_Excludes(t *testing.T) {
	root := canonicalTempDir(t)
	kept := createFile(t, root, "src/a.cpp", "")
	createFile(t, root, "build/generated.h", "")
	createFile(t, root, "src/third_party/lib/b.h", "")
	createFile(t, root, "src/skip_test.cpp", "")

	scanner, err := NewScanner([]string{"build", "**/third_party", "**/*_test.cpp"}, 0, nil)
	require.NoError(t, err)

	result, err := scanner.Scan([]string{root})

	require.NoError(t, err)
	assert.Equal(t, []CanonicalPath{canonical(kept)}, result.Files)
}

func TestNewScanner_InvalidExcludePattern(t *testing.T) {
	_, err := NewScanner([]string{"[unclosed"}, 0, nil)

	assert.Error(t, err)
}

func TestScanner_Scan_SymlinkedFileIsCanonicalized(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires elevated privileges on Windows")
	}

	root := canonicalTempDir(t)
	target := createFile(t, root, "real/a.h", "")
	createDir(t, root, "links")
	require.NoError(t, os.Symlink(target, filepath.Join(root, "links", "alias.h")))

	scanner, err := NewScanner(nil, 0, nil)
	require.NoError(t, err)

	result, err := scanner.Scan([]string{root})

	require.NoError(t, err)
	assert.Equal(t, []CanonicalPath{canonical(target)}, result.Files)
}

func TestNewResolveIndex(t *testing.T) {
	files := []CanonicalPath{
		"/r1/foo/x.h",
		"/r2/foo/x.h",
		"/r1/y.h",
		"/r1/foo/x.h",
	}

	index := NewResolveIndex(files)

	assert.Equal(t, 3, index.Len())
	assert.Equal(t, []CanonicalPath{"/r1/foo/x.h", "/r2/foo/x.h"}, index.Lookup("x.h"))
	assert.Equal(t, []CanonicalPath{"/r1/y.h"}, index.Lookup("y.h"))
	assert.Empty(t, index.Lookup("missing.h"))
}

func TestExcluded(t *testing.T) {
	root := filepath.Join("/work", "project")
	patterns := []string{"build", "**/generated/**", "*.hxx"}

	assert.True(t, Excluded(root, filepath.Join(root, "build"), patterns))
	assert.True(t, Excluded(root, filepath.Join(root, "src", "generated", "api.h"), patterns))
	assert.True(t, Excluded(root, filepath.Join(root, "legacy.hxx"), patterns))
	assert.False(t, Excluded(root, filepath.Join(root, "src", "build"), patterns))
	assert.False(t, Excluded(root, filepath.Join(root, "src", "main.cpp"), patterns))
	assert.False(t, Excluded(root, filepath.Join(root, "src", "main.cpp"), nil))
}
