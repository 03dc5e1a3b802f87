package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, path, err := Load(LoadOptions{SearchDir: t.TempDir(), EnvFile: missingEnvFile(t)})

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, "text", cfg.Format)
	assert.Empty(t, cfg.ToParse)
	assert.False(t, cfg.Verbose)
}

func TestLoad_YAMLFileFoundInSearchDir(t *testing.T) {
	dir := t.TempDir()
	expected := writeFile(t, dir, ".includeresolver.yaml", `
to_parse:
  - src
  - tools
include:
  - include
resolve:
  - third_party
exclude:
  - "**/build"
format: json
`)

	cfg, path, err := Load(LoadOptions{SearchDir: dir, EnvFile: missingEnvFile(t)})

	require.NoError(t, err)
	assert.Equal(t, expected, path)
	assert.Equal(t, []string{"src", "tools"}, cfg.ToParse)
	assert.Equal(t, []string{"include"}, cfg.Include)
	assert.Equal(t, []string{"third_party"}, cfg.Resolve)
	assert.Equal(t, []string{"**/build"}, cfg.Exclude)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_ExplicitTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "resolver.toml", `
to_parse = ["src"]
format = "yaml"
verbose = true
`)

	cfg, resolved, err := Load(LoadOptions{ConfigFilePath: path, EnvFile: missingEnvFile(t)})

	require.NoError(t, err)
	assert.Equal(t, path, resolved)
	assert.Equal(t, []string{"src"}, cfg.ToParse)
	assert.Equal(t, "yaml", cfg.Format)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, err := Load(LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "nope.yaml"),
		EnvFile:        missingEnvFile(t),
	})

	assert.ErrorContains(t, err, "config file not found")
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".includeresolver.json", `{"format": "json", "resolve": ["a"]}`)
	t.Setenv("INCLUDE_RESOLVER_FORMAT", "toml")

	cfg, _, err := Load(LoadOptions{SearchDir: dir, EnvFile: missingEnvFile(t)})

	require.NoError(t, err)
	assert.Equal(t, "toml", cfg.Format)
	assert.Equal(t, []string{"a"}, cfg.Resolve)
}

func TestLoad_EnvFileFeedsEnvironment(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, "test.env", "INCLUDE_RESOLVER_OUTPUT=report.txt\n")
	t.Cleanup(func() { os.Unsetenv("INCLUDE_RESOLVER_OUTPUT") })

	cfg, _, err := Load(LoadOptions{SearchDir: dir, EnvFile: envFile})

	require.NoError(t, err)
	assert.Equal(t, "report.txt", cfg.Output)
}

func TestLoad_ChangedFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".includeresolver.yaml", "to_parse: [from-file]\ninclude: [inc]\nformat: json\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringSlice("toParse", nil, "")
	flags.StringSlice("include", nil, "")
	flags.String("format", "text", "")
	require.NoError(t, flags.Parse([]string{"--toParse", "a,b"}))

	cfg, _, err := Load(LoadOptions{
		SearchDir: dir,
		EnvFile:   missingEnvFile(t),
		Flags:     flags,
		FlagBindings: map[string]string{
			KeyToParse: "toParse",
			KeyInclude: "include",
			KeyFormat:  "format",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cfg.ToParse)
	assert.Equal(t, []string{"inc"}, cfg.Include)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_UnknownFlagBinding(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	_, _, err := Load(LoadOptions{
		SearchDir:    t.TempDir(),
		EnvFile:      missingEnvFile(t),
		Flags:        flags,
		FlagBindings: map[string]string{KeyFormat: "format"},
	})

	assert.Error(t, err)
}
