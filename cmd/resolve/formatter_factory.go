package resolve

import (
	"fmt"

	"github.com/LegacyCodeHQ/includeresolver/cmd/resolve/formatters"
	"github.com/LegacyCodeHQ/includeresolver/cmd/resolve/formatters/dot"
	"github.com/LegacyCodeHQ/includeresolver/cmd/resolve/formatters/text"
)

// NewFormatter creates a Formatter for the specified format type.
func NewFormatter(format string) (formatters.Formatter, error) {
	f, ok := formatters.ParseOutputFormat(format)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, formatters.SupportedFormats())
	}

	switch f {
	case formatters.OutputFormatText:
		return &text.Formatter{}, nil
	case formatters.OutputFormatYAML:
		return &formatters.YAMLFormatter{}, nil
	case formatters.OutputFormatJSON:
		return &formatters.JSONFormatter{}, nil
	case formatters.OutputFormatTOML:
		return &formatters.TOMLFormatter{}, nil
	case formatters.OutputFormatDOT:
		return &dot.Formatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, formatters.SupportedFormats())
	}
}
