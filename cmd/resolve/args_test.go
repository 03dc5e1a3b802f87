package resolve

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noFiles(path string) ([]byte, error) {
	return nil, os.ErrNotExist
}

func fakeFiles(files map[string]string) func(string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		content, ok := files[path]
		if !ok {
			return nil, os.ErrNotExist
		}
		return []byte(content), nil
	}
}

func TestExpandArgs_MultiValueFlags(t *testing.T) {
	expanded, err := ExpandArgs([]string{"-p", "a", "b", "--include", "inc", "-r", "r1", "r2", "-v"}, noFiles)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"--toParse=a", "--toParse=b",
		"--include=inc",
		"--resolve=r1", "--resolve=r2",
		"-v",
	}, expanded)
}

func TestExpandArgs_PositionalArgumentsBeforeFlagsAreKept(t *testing.T) {
	expanded, err := ExpandArgs([]string{"src", "lib", "-e", "**/test/**", "-o", "out.txt"}, noFiles)

	require.NoError(t, err)
	assert.Equal(t, []string{"src", "lib", "--exclude=**/test/**", "-o", "out.txt"}, expanded)
}

func TestExpandArgs_FlagWithoutValuesIsDropped(t *testing.T) {
	expanded, err := ExpandArgs([]string{"-p", "-v"}, noFiles)

	require.NoError(t, err)
	assert.Equal(t, []string{"-v"}, expanded)
}

func TestExpandArgs_InlineValuesPassThrough(t *testing.T) {
	expanded, err := ExpandArgs([]string{"--toParse=a,b", "-i=inc"}, noFiles)

	require.NoError(t, err)
	assert.Equal(t, []string{"--toParse=a,b", "-i=inc"}, expanded)
}

func TestExpandArgs_HelpResultShorthand(t *testing.T) {
	expanded, err := ExpandArgs([]string{"-hr"}, noFiles)

	require.NoError(t, err)
	assert.Equal(t, []string{"--help-result"}, expanded)
}

func TestExpandArgs_DoubleDashStopsExpansion(t *testing.T) {
	expanded, err := ExpandArgs([]string{"-p", "a", "--", "-p", "b"}, noFiles)

	require.NoError(t, err)
	assert.Equal(t, []string{"--toParse=a", "--", "-p", "b"}, expanded)
}

func TestExpandArgs_ArgumentFileWordsAreAppended(t *testing.T) {
	readFile := fakeFiles(map[string]string{
		"args.txt": "-p src\n  lib\n-r \"third party\" vendor\n",
	})

	expanded, err := ExpandArgs([]string{"-f", "args.txt", "-v"}, readFile)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"-v",
		"--toParse=src", "--toParse=lib",
		"--resolve=third party", "--resolve=vendor",
	}, expanded)
}

func TestExpandArgs_ArgumentFilesCanNameArgumentFiles(t *testing.T) {
	readFile := fakeFiles(map[string]string{
		"outer.txt": "--file inner.txt -p a",
		"inner.txt": "-i inc",
	})

	expanded, err := ExpandArgs([]string{"--file=outer.txt"}, readFile)

	require.NoError(t, err)
	assert.Equal(t, []string{"--toParse=a", "--include=inc"}, expanded)
}

func TestExpandArgs_ArgumentFileCycleIsBounded(t *testing.T) {
	readFile := fakeFiles(map[string]string{
		"self.txt": "-f self.txt",
	})

	_, err := ExpandArgs([]string{"-f", "self.txt"}, readFile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many argument files")
}

func TestExpandArgs_MissingArgumentFile(t *testing.T) {
	_, err := ExpandArgs([]string{"-f", "missing.txt"}, noFiles)

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestExpandArgs_FileFlagNeedsArgument(t *testing.T) {
	_, err := ExpandArgs([]string{"-f", "-v"}, noFiles)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag needs an argument")
}

func TestTokenizeArgs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "whitespace separated", content: "a  b\tc\nd", want: []string{"a", "b", "c", "d"}},
		{name: "quoted group", content: `"my folder" x`, want: []string{"my folder", "x"}},
		{name: "quoted single word", content: `"a"`, want: []string{"a"}},
		{name: "group across lines", content: "\"a\nb c\"", want: []string{"a b c"}},
		{name: "empty", content: " \n ", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tokenizeArgs("args.txt", tc.content)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokenizeArgs_QuoteInsideWordIsRejected(t *testing.T) {
	_, err := tokenizeArgs("args.txt", `a"b`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid quote in file args.txt")
}

func TestTokenizeArgs_UnterminatedQuoteIsRejected(t *testing.T) {
	_, err := tokenizeArgs("args.txt", `"a b`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated quote")
}
