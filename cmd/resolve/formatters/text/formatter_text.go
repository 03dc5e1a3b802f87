package text

import (
	"strings"

	"github.com/LegacyCodeHQ/includeresolver/cmd/resolve/formatters"
	"github.com/LegacyCodeHQ/includeresolver/includes"
	"github.com/charmbracelet/lipgloss"
)

const indent = "    "

// Formatter renders resolution results in the indented human-readable layout.
type Formatter struct{}

// Format renders every section of the result. Empty sections keep their heading.
// Unreadable files are listed only when there are some.
func (f *Formatter) Format(result *includes.Result, opts formatters.FormatOptions) (string, error) {
	heading := headingStyle(opts.Renderer)

	var sb strings.Builder

	sb.WriteString(heading("invalidPaths:"))
	for _, p := range result.InvalidPaths() {
		sb.WriteString("\n" + indent + "- " + p)
	}

	sb.WriteString("\n" + heading("unresolvedIncludes:"))
	for _, u := range result.UnresolvedIncludes() {
		sb.WriteString("\n" + indent + u.String())
	}

	sb.WriteString("\n" + heading("conflictedIncludes:"))
	for _, c := range result.SortedConflicts() {
		sb.WriteString("\n" + indent + c.Include + ":")
		sb.WriteString("\n" + indent + indent + "includedBy:")
		for _, loc := range c.Locations {
			sb.WriteString("\n" + indent + indent + indent + "- " + loc.String())
		}
		sb.WriteString("\n" + indent + indent + "canBeResolvedBy:")
		for _, folder := range c.Candidates {
			sb.WriteString("\n" + indent + indent + indent + "- " + folder.Display())
		}
	}

	sb.WriteString("\n" + heading("resolveIncludeFolders:"))
	for _, folder := range result.ResolveIncludeFolders() {
		sb.WriteString("\n" + indent + "- " + folder.Display())
	}

	if unreadable := result.UnreadableFiles(); len(unreadable) > 0 {
		sb.WriteString("\n" + heading("unreadableFiles:"))
		for _, file := range unreadable {
			sb.WriteString("\n" + indent + "- " + file.Display())
		}
	}

	return sb.String(), nil
}

func headingStyle(renderer *lipgloss.Renderer) func(string) string {
	if renderer == nil {
		return func(s string) string { return s }
	}
	style := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	return func(s string) string { return style.Render(s) }
}
