package resolve

import (
	"fmt"
	"io"

	"github.com/LegacyCodeHQ/includeresolver/includes"
)

// progressPrinter rewrites a single "[current/total]" status line on w.
type progressPrinter struct {
	w       io.Writer
	printed bool
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w}
}

func (p *progressPrinter) update(current, total int, _ includes.CanonicalPath) {
	p.printed = true
	fmt.Fprintf(p.w, "\r[%d/%d]", current, total)
}

// finish ends the status line.
func (p *progressPrinter) finish() {
	if p.printed {
		fmt.Fprintln(p.w)
	}
}
