package formatters

import "github.com/LegacyCodeHQ/includeresolver/includes"

// ResultSchema describes the structured report shared by the yaml, json and toml formats.
const ResultSchema = `Result yaml format:
  invalidPaths: string[]
  unresolvedIncludes: { "filePath": string, "line": number, "include": string }[]
  conflictedIncludes: { "include": string, "includedBy": { "filePath": string, "line": number }[], "canBeResolvedBy": string[] }[]
  resolveIncludeFolders: string[]
`

// Report is the serializable view of a resolution result. Every list is sorted.
type Report struct {
	InvalidPaths          []string          `json:"invalidPaths" yaml:"invalidPaths" toml:"invalidPaths"`
	UnresolvedIncludes    []UnresolvedEntry `json:"unresolvedIncludes" yaml:"unresolvedIncludes" toml:"unresolvedIncludes"`
	ConflictedIncludes    []ConflictEntry   `json:"conflictedIncludes" yaml:"conflictedIncludes" toml:"conflictedIncludes"`
	ResolveIncludeFolders []string          `json:"resolveIncludeFolders" yaml:"resolveIncludeFolders" toml:"resolveIncludeFolders"`
}

// UnresolvedEntry is one unresolved include directive.
type UnresolvedEntry struct {
	FilePath string `json:"filePath" yaml:"filePath" toml:"filePath"`
	Line     int    `json:"line" yaml:"line" toml:"line"`
	Include  string `json:"include" yaml:"include" toml:"include"`
}

// LocationEntry is the position of an include directive.
type LocationEntry struct {
	FilePath string `json:"filePath" yaml:"filePath" toml:"filePath"`
	Line     int    `json:"line" yaml:"line" toml:"line"`
}

// ConflictEntry is one include text with several candidate folders.
type ConflictEntry struct {
	Include         string          `json:"include" yaml:"include" toml:"include"`
	IncludedBy      []LocationEntry `json:"includedBy" yaml:"includedBy" toml:"includedBy"`
	CanBeResolvedBy []string        `json:"canBeResolvedBy" yaml:"canBeResolvedBy" toml:"canBeResolvedBy"`
}

// NewReport builds the serializable view of result.
func NewReport(result *includes.Result) Report {
	report := Report{
		InvalidPaths:          result.InvalidPaths(),
		UnresolvedIncludes:    []UnresolvedEntry{},
		ConflictedIncludes:    []ConflictEntry{},
		ResolveIncludeFolders: displayPaths(result.ResolveIncludeFolders()),
	}
	if report.InvalidPaths == nil {
		report.InvalidPaths = []string{}
	}

	for _, u := range result.UnresolvedIncludes() {
		report.UnresolvedIncludes = append(report.UnresolvedIncludes, UnresolvedEntry{
			FilePath: u.File.Display(),
			Line:     u.Line,
			Include:  u.Include,
		})
	}

	for _, c := range result.SortedConflicts() {
		entry := ConflictEntry{
			Include:         c.Include,
			IncludedBy:      make([]LocationEntry, 0, len(c.Locations)),
			CanBeResolvedBy: displayPaths(c.Candidates),
		}
		for _, loc := range c.Locations {
			entry.IncludedBy = append(entry.IncludedBy, LocationEntry{FilePath: loc.File.Display(), Line: loc.Line})
		}
		report.ConflictedIncludes = append(report.ConflictedIncludes, entry)
	}

	return report
}

func displayPaths(paths []includes.CanonicalPath) []string {
	display := make([]string, 0, len(paths))
	for _, p := range paths {
		display = append(display, p.Display())
	}
	return display
}
