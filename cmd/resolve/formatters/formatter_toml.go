package formatters

import (
	"strings"

	"github.com/LegacyCodeHQ/includeresolver/includes"
	"github.com/pelletier/go-toml/v2"
)

// TOMLFormatter formats resolution results as TOML.
type TOMLFormatter struct{}

// Format converts the result to TOML. Conflicts and unresolved includes become arrays of tables.
func (f *TOMLFormatter) Format(result *includes.Result, opts FormatOptions) (string, error) {
	data, err := toml.Marshal(NewReport(result))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}
