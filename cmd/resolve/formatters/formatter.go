package formatters

import (
	"strings"

	"github.com/LegacyCodeHQ/includeresolver/includes"
	"github.com/charmbracelet/lipgloss"
)

// FormatOptions contains optional parameters for formatting resolution results.
type FormatOptions struct {
	// Renderer styles headings in human-readable formats. Nil renders plain text.
	Renderer *lipgloss.Renderer
}

// Formatter is the interface that all result formatters must implement.
type Formatter interface {
	// Format converts a resolution result to a formatted string representation.
	Format(result *includes.Result, opts FormatOptions) (string, error)
}

// OutputFormat represents an output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatTOML OutputFormat = "toml"
	OutputFormatDOT  OutputFormat = "dot"
)

var outputFormats = []OutputFormat{
	OutputFormatText,
	OutputFormatYAML,
	OutputFormatJSON,
	OutputFormatTOML,
	OutputFormatDOT,
}

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat maps a user-supplied name to a known format.
func ParseOutputFormat(value string) (OutputFormat, bool) {
	for _, f := range outputFormats {
		if strings.EqualFold(value, f.String()) {
			return f, true
		}
	}
	return "", false
}

// SupportedFormats lists the known formats, comma separated.
func SupportedFormats() string {
	names := make([]string, 0, len(outputFormats))
	for _, f := range outputFormats {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
