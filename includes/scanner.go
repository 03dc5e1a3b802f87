package includes

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// sourceExtensions is the fixed, case-sensitive allow-list of scanned files.
var sourceExtensions = []string{".h", ".hpp", ".hxx", ".hh", ".c", ".cpp", ".cxx"}

// SourceExtensions returns the file extensions recognized as C/C++ sources and headers.
func SourceExtensions() []string {
	return append([]string(nil), sourceExtensions...)
}

// IsSourceFile reports whether path ends with a recognized extension.
func IsSourceFile(path string) bool {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// ScanResult is the outcome of scanning a list of roots.
type ScanResult struct {
	// Files holds the canonical paths of every recognized file, sorted and unique.
	Files []CanonicalPath
	// InvalidRoots holds the roots that do not exist, as given.
	InvalidRoots []string
}

// Scanner enumerates source files below a set of roots.
type Scanner struct {
	excludes []string
	workers  int
	logger   *log.Logger
}

// NewScanner creates a Scanner. Exclude patterns use doublestar syntax and are
// matched against the slash-separated path relative to the scanned root.
func NewScanner(excludes []string, workers int, logger *log.Logger) (*Scanner, error) {
	for _, pattern := range excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Scanner{
		excludes: append([]string(nil), excludes...),
		workers:  workers,
		logger:   logger,
	}, nil
}

// Scan walks every root concurrently. A missing root is reported in
// ScanResult.InvalidRoots and contributes nothing.
func (s *Scanner) Scan(roots []string) (ScanResult, error) {
	var (
		mu      sync.Mutex
		files   = make(map[CanonicalPath]struct{})
		invalid []string
	)

	g := new(errgroup.Group)
	g.SetLimit(s.workers)

	for _, root := range roots {
		root := root
		g.Go(func() error {
			found, ok, err := s.scanRoot(root)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			if !ok {
				invalid = append(invalid, root)
				return nil
			}
			for _, f := range found {
				files[f] = struct{}{}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ScanResult{}, err
	}

	result := ScanResult{
		Files:        make([]CanonicalPath, 0, len(files)),
		InvalidRoots: invalid,
	}
	for f := range files {
		result.Files = append(result.Files, f)
	}
	sort.Slice(result.Files, func(i, j int) bool { return result.Files[i] < result.Files[j] })
	sort.Strings(result.InvalidRoots)

	return result, nil
}

// scanRoot returns the recognized files below root. ok is false when root does not exist.
func (s *Scanner) scanRoot(root string) (found []CanonicalPath, ok bool, err error) {
	info, statErr := os.Stat(root)
	if statErr != nil {
		s.logger.Debug("skipping missing root", "root", root, "err", statErr)
		return nil, false, nil
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, true, fmt.Errorf("failed to resolve path %s: %w", root, err)
	}

	if !info.IsDir() {
		if IsSourceFile(absRoot) {
			if canonical, ok := s.canonicalize(absRoot); ok {
				found = append(found, canonical)
			}
		}
		return found, true, nil
	}

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("failed to read directory", "path", path, "err", err)
			if d != nil && d.IsDir() && path != absRoot {
				return filepath.SkipDir
			}
			return nil
		}

		if path != absRoot && s.isExcluded(absRoot, path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !IsSourceFile(path) {
			return nil
		}

		if canonical, ok := s.canonicalize(path); ok {
			found = append(found, canonical)
		}
		return nil
	})
	if walkErr != nil {
		return nil, true, fmt.Errorf("failed to walk directory %s: %w", root, walkErr)
	}

	return found, true, nil
}

func (s *Scanner) canonicalize(path string) (CanonicalPath, bool) {
	canonical, err := Canonicalize(path)
	if err != nil {
		// broken symlink
		s.logger.Warn("skipping file", "path", path, "err", err)
		return "", false
	}
	return canonical, true
}

func (s *Scanner) isExcluded(root, path string) bool {
	return Excluded(root, path, s.excludes)
}

// Excluded reports whether path, taken relative to root with forward slashes,
// matches one of the doublestar patterns.
func Excluded(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

// ResolveIndex maps a file basename to every canonical path sharing it.
// It is built once and never modified afterwards.
type ResolveIndex struct {
	byBase map[string][]CanonicalPath
	size   int
}

// NewResolveIndex indexes files by basename. Duplicate paths are ignored.
func NewResolveIndex(files []CanonicalPath) *ResolveIndex {
	index := &ResolveIndex{byBase: make(map[string][]CanonicalPath)}
	seen := make(map[CanonicalPath]bool, len(files))

	for _, f := range files {
		if seen[f] {
			continue
		}
		seen[f] = true
		base := f.Base()
		index.byBase[base] = append(index.byBase[base], f)
		index.size++
	}

	return index
}

// Lookup returns the indexed paths whose basename is base.
func (ix *ResolveIndex) Lookup(base string) []CanonicalPath {
	return ix.byBase[base]
}

// Len returns the number of indexed files.
func (ix *ResolveIndex) Len() int {
	return ix.size
}
