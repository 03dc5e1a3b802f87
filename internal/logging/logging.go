// Package logging builds the loggers used by the CLI.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

const prefix = "includeresolver"

// New returns a logger writing to w. Verbose loggers emit debug entries;
// otherwise only warnings and errors are shown.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  level,
	})
}

// Discard returns a logger that drops every entry.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
