package resolve

import (
	"fmt"
	"strings"
)

// maxArgumentFiles bounds --file expansion, since an argument file may name other argument files.
const maxArgumentFiles = 256

// listFlags maps every spelling of a multi-value flag to its long form.
var listFlags = map[string]string{
	"-p":        "--toParse",
	"--toParse": "--toParse",
	"-i":        "--include",
	"--include": "--include",
	"-r":        "--resolve",
	"--resolve": "--resolve",
	"-e":        "--exclude",
	"--exclude": "--exclude",
}

// ExpandArgs rewrites the command line into a form pflag understands.
//
// A multi-value flag consumes every following word that does not start with
// "-", so `-p a b -i c` becomes `--toParse=a --toParse=b --include=c`.
// `--file` names files whose whitespace-separated words are appended to the
// end of the command line and expanded in turn. "-hr" is short for
// --help-result.
func ExpandArgs(args []string, readFile func(string) ([]byte, error)) ([]string, error) {
	pending := append([]string(nil), args...)
	expanded := make([]string, 0, len(args))
	filesRead := 0

	for i := 0; i < len(pending); i++ {
		arg := pending[i]

		if arg == "--" {
			expanded = append(expanded, pending[i:]...)
			break
		}
		if arg == "-hr" {
			expanded = append(expanded, "--help-result")
			continue
		}

		name, value, hasValue := strings.Cut(arg, "=")

		if name == "-f" || name == "--file" {
			var paths []string
			if hasValue {
				paths = append(paths, value)
			}
			for !hasValue && i+1 < len(pending) && !isFlag(pending[i+1]) {
				i++
				paths = append(paths, pending[i])
			}
			if len(paths) == 0 {
				return nil, fmt.Errorf("flag needs an argument: %s", name)
			}

			for _, path := range paths {
				filesRead++
				if filesRead > maxArgumentFiles {
					return nil, fmt.Errorf("too many argument files (limit %d)", maxArgumentFiles)
				}
				content, err := readFile(path)
				if err != nil {
					return nil, fmt.Errorf("failed to read argument file %s: %w", path, err)
				}
				words, err := tokenizeArgs(path, string(content))
				if err != nil {
					return nil, err
				}
				pending = append(pending, words...)
			}
			continue
		}

		if long, ok := listFlags[name]; ok && !hasValue {
			for i+1 < len(pending) && !isFlag(pending[i+1]) {
				i++
				expanded = append(expanded, long+"="+pending[i])
			}
			continue
		}

		expanded = append(expanded, arg)
	}

	return expanded, nil
}

// tokenizeArgs splits the content of an argument file into words. A word
// starting with a double quote opens a group that the next word ending with
// a double quote closes; the group becomes one argument with the quotes
// removed. A quote anywhere else in a word is an error.
func tokenizeArgs(fileName, content string) ([]string, error) {
	var words []string
	var group []string
	closed := true

	for _, word := range strings.Fields(content) {
		if pos := strings.IndexByte(word, '"'); pos > 0 && pos < len(word)-1 {
			return nil, fmt.Errorf("invalid quote in file %s for word %s", fileName, word)
		}

		group = append(group, word)
		if word[0] == '"' {
			closed = false
		}
		if word[len(word)-1] == '"' {
			closed = true
		}
		if closed {
			words = append(words, strings.ReplaceAll(strings.Join(group, " "), `"`, ""))
			group = group[:0]
		}
	}

	if len(group) > 0 {
		return nil, fmt.Errorf("unterminated quote in file %s", fileName)
	}
	return words, nil
}

func isFlag(arg string) bool {
	return strings.HasPrefix(arg, "-")
}
