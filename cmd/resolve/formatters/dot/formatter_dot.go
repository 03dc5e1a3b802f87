package dot

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/includeresolver/cmd/resolve/formatters"
	"github.com/LegacyCodeHQ/includeresolver/includes"
	"github.com/dominikbraun/graph/draw"
)

// Formatter renders the include graph as Graphviz DOT.
type Formatter struct{}

// Format writes one node per parsed file and one edge per resolved include.
// Edges are labelled with the strategy that resolved them.
func (f *Formatter) Format(result *includes.Result, opts formatters.FormatOptions) (string, error) {
	g, err := result.IncludeGraph()
	if err != nil {
		return "", fmt.Errorf("failed to copy include graph: %w", err)
	}

	var sb strings.Builder
	if err := draw.DOT(g, &sb,
		draw.GraphAttribute("rankdir", "LR"),
		draw.GraphAttribute("label", "includes"),
	); err != nil {
		return "", fmt.Errorf("failed to render include graph: %w", err)
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}
