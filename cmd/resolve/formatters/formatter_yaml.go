package formatters

import (
	"bytes"
	"strings"

	"github.com/LegacyCodeHQ/includeresolver/includes"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats resolution results as YAML.
type YAMLFormatter struct{}

// Format converts the result to YAML with two-space indentation.
func (f *YAMLFormatter) Format(result *includes.Result, opts FormatOptions) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(NewReport(result)); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
