package includes

import (
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"
)

// Location is the position of an include directive.
type Location struct {
	File CanonicalPath
	Line int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File.Display(), l.Line)
}

func (l Location) less(other Location) bool {
	if l.File != other.File {
		return l.File < other.File
	}
	return l.Line < other.Line
}

// UnresolvedInclude is an include directive no strategy could resolve.
type UnresolvedInclude struct {
	Location
	Include string
}

func (u UnresolvedInclude) less(other UnresolvedInclude) bool {
	if u.Location != other.Location {
		return u.Location.less(other.Location)
	}
	return u.Include < other.Include
}

func (u UnresolvedInclude) String() string {
	return fmt.Sprintf("%s : %s", u.Location, u.Include)
}

// ConflictedInclude is an include text that two or more resolve folders can satisfy.
// Locations and Candidates are sorted.
type ConflictedInclude struct {
	Include    string
	Locations  []Location
	Candidates []CanonicalPath
}

// Result is the immutable outcome of a resolution. Accessors return copies.
type Result struct {
	invalidPaths   []string
	unresolved     []UnresolvedInclude
	conflicts      map[string]ConflictedInclude
	resolveFolders []CanonicalPath
	unreadable     []CanonicalPath
	malformed      []Location
	parsedFiles    int
	graph          graph.Graph[string, string]
}

// InvalidPaths returns the input folders that do not exist, as they were given.
func (r *Result) InvalidPaths() []string {
	return append([]string(nil), r.invalidPaths...)
}

// UnresolvedIncludes returns the unresolved directives ordered by file and line.
func (r *Result) UnresolvedIncludes() []UnresolvedInclude {
	return append([]UnresolvedInclude(nil), r.unresolved...)
}

// ConflictedIncludes returns the conflicts keyed by include text.
func (r *Result) ConflictedIncludes() map[string]ConflictedInclude {
	conflicts := make(map[string]ConflictedInclude, len(r.conflicts))
	for include, conflict := range r.conflicts {
		conflicts[include] = copyConflict(conflict)
	}
	return conflicts
}

// SortedConflicts returns the conflicts ordered by include text, for display.
func (r *Result) SortedConflicts() []ConflictedInclude {
	conflicts := make([]ConflictedInclude, 0, len(r.conflicts))
	for _, conflict := range r.conflicts {
		conflicts = append(conflicts, copyConflict(conflict))
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].Include < conflicts[j].Include })
	return conflicts
}

// ResolveIncludeFolders returns the folders a build must add as include search paths.
func (r *Result) ResolveIncludeFolders() []CanonicalPath {
	return append([]CanonicalPath(nil), r.resolveFolders...)
}

// UnreadableFiles returns the files that were queued but could not be read.
func (r *Result) UnreadableFiles() []CanonicalPath {
	return append([]CanonicalPath(nil), r.unreadable...)
}

// MalformedDirectives returns the locations of directives with an unterminated delimiter.
func (r *Result) MalformedDirectives() []Location {
	return append([]Location(nil), r.malformed...)
}

// ParsedFiles returns how many files were read and parsed.
func (r *Result) ParsedFiles() int {
	return r.parsedFiles
}

// IncludeGraph returns a copy of the file -> included file graph.
func (r *Result) IncludeGraph() (graph.Graph[string, string], error) {
	return r.graph.Clone()
}

func copyConflict(c ConflictedInclude) ConflictedInclude {
	return ConflictedInclude{
		Include:    c.Include,
		Locations:  append([]Location(nil), c.Locations...),
		Candidates: append([]CanonicalPath(nil), c.Candidates...),
	}
}

// aggregate packages the engine accumulators into a Result.
func aggregate(e *engine) *Result {
	result := &Result{
		invalidPaths:   sortedKeys(e.invalidPaths, lessString),
		unresolved:     sortedKeys(e.unresolved, UnresolvedInclude.less),
		conflicts:      make(map[string]ConflictedInclude, len(e.conflicts)),
		resolveFolders: sortedKeys(e.resolveFolders, CanonicalPath.less),
		unreadable:     sortedKeys(e.unreadable, CanonicalPath.less),
		malformed:      sortedKeys(e.malformed, Location.less),
		parsedFiles:    e.parsedFiles,
		graph:          e.graph.g,
	}

	for include, record := range e.conflicts {
		result.conflicts[include] = ConflictedInclude{
			Include:    include,
			Locations:  sortedKeys(record.locations, Location.less),
			Candidates: sortedKeys(record.candidates, CanonicalPath.less),
		}
	}

	return result
}

func lessString(a, b string) bool {
	return a < b
}

func sortedKeys[K comparable](set map[K]struct{}, less func(a, b K) bool) []K {
	keys := make([]K, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	return keys
}
