package includes

import (
	"path"
	"path/filepath"
	"strings"
)

// engine drains the worklist and applies the resolution policy to every directive.
// It is single-threaded: the policy depends on processing order.
type engine struct {
	opts options

	worklist []CanonicalPath
	visited  map[CanonicalPath]struct{}

	index           *ResolveIndex
	declaredFolders []CanonicalPath
	stats           *statCache
	graph           *includeGraph

	invalidPaths   map[string]struct{}
	resolveFolders map[CanonicalPath]struct{}
	conflicts      map[string]*conflictRecord
	unresolved     map[UnresolvedInclude]struct{}
	unreadable     map[CanonicalPath]struct{}
	malformed      map[Location]struct{}
	parsedFiles    int
}

type conflictRecord struct {
	locations  map[Location]struct{}
	candidates map[CanonicalPath]struct{}
	// files are the matched headers, one per candidate folder.
	files []CanonicalPath
}

// suffixMatch is a resolve-folder file whose path ends with the include text.
type suffixMatch struct {
	folder CanonicalPath
	file   CanonicalPath
}

func newEngine(o options) *engine {
	return &engine{
		opts:           o,
		visited:        make(map[CanonicalPath]struct{}),
		index:          NewResolveIndex(nil),
		stats:          newStatCache(o.statCacheSize),
		graph:          newIncludeGraph(),
		invalidPaths:   make(map[string]struct{}),
		resolveFolders: make(map[CanonicalPath]struct{}),
		conflicts:      make(map[string]*conflictRecord),
		unresolved:     make(map[UnresolvedInclude]struct{}),
		unreadable:     make(map[CanonicalPath]struct{}),
		malformed:      make(map[Location]struct{}),
	}
}

// declareIncludeFolders validates the declared include folders. Existing ones
// seed the resolve-folder set and are kept, in order, for the fallback probe.
func (e *engine) declareIncludeFolders(folders []string) {
	seen := make(map[CanonicalPath]bool)
	for _, folder := range folders {
		canonical, err := Canonicalize(folder)
		if err != nil || !e.stats.isDir(string(canonical)) {
			e.invalidPaths[folder] = struct{}{}
			continue
		}

		e.resolveFolders[canonical] = struct{}{}
		if !seen[canonical] {
			seen[canonical] = true
			e.declaredFolders = append(e.declaredFolders, canonical)
		}
	}
}

func (e *engine) addInvalidPaths(paths []string) {
	for _, p := range paths {
		e.invalidPaths[p] = struct{}{}
	}
}

// enqueue appends file to the worklist unless it was already queued.
func (e *engine) enqueue(file CanonicalPath) {
	if _, ok := e.visited[file]; ok {
		return
	}
	e.visited[file] = struct{}{}
	e.worklist = append(e.worklist, file)
}

// run drains the worklist by index; resolving a directive may append to it.
func (e *engine) run() {
	for i := 0; i < len(e.worklist); i++ {
		file := e.worklist[i]
		if e.opts.progress != nil {
			e.opts.progress(i+1, len(e.worklist), file)
		}
		e.parseFile(file)
	}
}

func (e *engine) parseFile(file CanonicalPath) {
	content, err := e.opts.contentReader(string(file))
	if err != nil {
		e.opts.logger.Warn("failed to read file", "file", file.Display(), "err", err)
		e.unreadable[file] = struct{}{}
		return
	}
	e.parsedFiles++
	e.link(e.graph.addFile(file))

	directives, malformedLines := ParseDirectives(content)
	for _, line := range malformedLines {
		loc := Location{File: file, Line: line}
		e.opts.logger.Debug("skipping malformed include", "location", loc.String())
		e.malformed[loc] = struct{}{}
	}

	for _, d := range directives {
		e.resolveDirective(Location{File: file, Line: d.Line}, d.Text)
	}
}

// resolveDirective applies, in order: relative resolution, known-conflict
// continuation, resolve-folder suffix matching, declared include folders.
func (e *engine) resolveDirective(loc Location, include string) {
	if target, ok := e.resolveRelative(loc.File, include); ok {
		e.link(e.graph.addEdge(loc.File, target, EdgeRelative))
		e.enqueue(target)
		return
	}

	if record, ok := e.conflicts[include]; ok {
		record.locations[loc] = struct{}{}
		for _, f := range record.files {
			e.link(e.graph.addEdge(loc.File, f, EdgeConflict))
		}
		return
	}

	if matches := e.resolveFolderMatches(include); len(matches) > 0 {
		if len(matches) == 1 {
			e.resolveFolders[matches[0].folder] = struct{}{}
			e.link(e.graph.addEdge(loc.File, matches[0].file, EdgeResolveFolder))
			e.enqueue(matches[0].file)
			return
		}

		e.recordConflict(loc, include, matches)
		return
	}

	if target, ok := e.probeDeclaredFolders(include); ok {
		e.link(e.graph.addEdge(loc.File, target, EdgeIncludeFolder))
		e.enqueue(target)
		return
	}

	e.unresolved[UnresolvedInclude{Location: loc, Include: include}] = struct{}{}
}

// resolveRelative checks the include against the including file's directory.
func (e *engine) resolveRelative(file CanonicalPath, include string) (CanonicalPath, bool) {
	return e.existingFile(file.Dir().join(include))
}

// resolveFolderMatches returns one match per distinct resolve folder whose
// indexed file ends with "/" + include.
func (e *engine) resolveFolderMatches(include string) []suffixMatch {
	slashed := filepath.ToSlash(include)
	suffix := "/" + slashed

	var matches []suffixMatch
	seen := make(map[CanonicalPath]bool)
	for _, f := range e.index.Lookup(path.Base(slashed)) {
		display := f.Display()
		if !strings.HasSuffix(display, suffix) {
			continue
		}

		folder := displayToCanonical(strings.TrimSuffix(display, suffix))
		if seen[folder] {
			continue
		}
		seen[folder] = true
		matches = append(matches, suffixMatch{folder: folder, file: f})
	}

	return matches
}

// recordConflict creates the conflict record for include. Its candidates are
// fixed from now on; every candidate file is still queued for parsing.
func (e *engine) recordConflict(loc Location, include string, matches []suffixMatch) {
	record := &conflictRecord{
		locations:  map[Location]struct{}{loc: {}},
		candidates: make(map[CanonicalPath]struct{}, len(matches)),
	}
	for _, m := range matches {
		record.candidates[m.folder] = struct{}{}
		record.files = append(record.files, m.file)
	}
	e.conflicts[include] = record

	e.opts.logger.Debug("conflicted include", "include", include, "location", loc.String(), "candidates", len(matches))

	for _, m := range matches {
		e.link(e.graph.addEdge(loc.File, m.file, EdgeConflict))
		e.enqueue(m.file)
	}
}

// probeDeclaredFolders returns the first declared include folder providing include.
func (e *engine) probeDeclaredFolders(include string) (CanonicalPath, bool) {
	for _, folder := range e.declaredFolders {
		if target, ok := e.existingFile(folder.join(include)); ok {
			return target, true
		}
	}
	return "", false
}

func (e *engine) existingFile(candidate string) (CanonicalPath, bool) {
	if !e.stats.isFile(candidate) {
		return "", false
	}

	canonical, err := Canonicalize(candidate)
	if err != nil {
		e.opts.logger.Warn("failed to canonicalize include", "path", candidate, "err", err)
		return "", false
	}
	return canonical, true
}

// link reports include graph failures; they never affect resolution.
func (e *engine) link(err error) {
	if err != nil {
		e.opts.logger.Debug("failed to record include edge", "err", err)
	}
}
