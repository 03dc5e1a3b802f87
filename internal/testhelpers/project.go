package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LegacyCodeHQ/includeresolver/includes"
	"github.com/stretchr/testify/require"
)

// Project is a small C++ tree on disk that exercises every kind of result entry.
type Project struct {
	Root     string
	Settings includes.Settings
}

// NewProject lays out:
//
//	src/main.cpp        includes local.h, lib/api.h, shared/config.h and missing.h
//	src/local.h         includes shared/config.h
//	third_party/liba/include/lib/api.h
//	third_party/one/shared/config.h
//	third_party/two/shared/config.h
//
// src is parsed, third_party is the resolve root and a missing folder is listed as an include folder.
func NewProject(t *testing.T) Project {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	WriteFile(t, root, "src/main.cpp", strings.Join([]string{
		`#include "local.h"`,
		`#include <lib/api.h>`,
		`#include "shared/config.h"`,
		`#include <missing.h>`,
		"",
		"int main() { return 0; }",
	}, "\n"))
	WriteFile(t, root, "src/local.h", "#include \"shared/config.h\"\n")
	WriteFile(t, root, "third_party/liba/include/lib/api.h", "")
	WriteFile(t, root, "third_party/one/shared/config.h", "")
	WriteFile(t, root, "third_party/two/shared/config.h", "")

	return Project{
		Root: root,
		Settings: includes.Settings{
			ToParseFolders: []string{filepath.Join(root, "src")},
			IncludeFolders: []string{filepath.Join(root, "missing")},
			ResolveFolders: []string{filepath.Join(root, "third_party")},
		},
	}
}

// Resolve runs the resolver over the project.
func (p Project) Resolve(t *testing.T) *includes.Result {
	t.Helper()

	result, err := includes.Resolve(p.Settings)
	require.NoError(t, err)
	return result
}

// Normalize replaces the project root with $ROOT so output can be compared with golden files.
func (p Project) Normalize(output string) string {
	return strings.ReplaceAll(output, filepath.ToSlash(p.Root), "$ROOT")
}

// WriteFile creates a file with content below dir, creating parent directories as needed.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	filePath := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644), "failed to create file %s", name)
	return filePath
}
