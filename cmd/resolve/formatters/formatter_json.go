package formatters

import (
	"encoding/json"

	"github.com/LegacyCodeHQ/includeresolver/includes"
)

// JSONFormatter formats resolution results as JSON.
type JSONFormatter struct{}

// Format converts the result to indented JSON.
// The opts parameter is accepted for interface compatibility but not used.
func (f *JSONFormatter) Format(result *includes.Result, opts FormatOptions) (string, error) {
	data, err := json.MarshalIndent(NewReport(result), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
