package watch

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/LegacyCodeHQ/includeresolver/cmd/resolve/formatters"
	"github.com/LegacyCodeHQ/includeresolver/includes"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// reporter runs a full resolution and prints its report. Runs are serialized.
type reporter struct {
	mu        sync.Mutex
	out       io.Writer
	settings  includes.Settings
	formatter formatters.Formatter
	renderer  *lipgloss.Renderer
	logger    *log.Logger
	runs      int
}

func newReporter(out io.Writer, settings includes.Settings, formatter formatters.Formatter, logger *log.Logger) *reporter {
	return &reporter{
		out:       out,
		settings:  settings,
		formatter: formatter,
		logger:    logger,
	}
}

func (r *reporter) publish() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	started := time.Now()
	result, err := includes.Resolve(r.settings, includes.WithLogger(r.logger))
	if err != nil {
		return fmt.Errorf("failed to resolve includes: %w", err)
	}

	output, err := r.formatter.Format(result, formatters.FormatOptions{Renderer: r.renderer})
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}

	r.runs++
	r.logger.Debug("resolution complete", "run", r.runs, "parsed", result.ParsedFiles(), "took", time.Since(started))

	_, err = fmt.Fprintf(r.out, "%s\n\n", output)
	return err
}

func (r *reporter) publishOrLog() {
	if err := r.publish(); err != nil {
		r.logger.Error("resolution failed", "err", err)
	}
}
