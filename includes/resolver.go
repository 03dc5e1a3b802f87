package includes

import (
	"io"

	"github.com/charmbracelet/log"
)

// Settings lists the folders a resolution works on.
type Settings struct {
	// ToParseFolders are scanned; every recognized file below them is parsed.
	ToParseFolders []string
	// IncludeFolders are already-correct include roots. Existing ones seed the
	// resolve-folder set and are probed, in order, as the last resolution step.
	IncludeFolders []string
	// ResolveFolders are scanned and indexed to infer missing include roots.
	ResolveFolders []string
	// Excludes are doublestar patterns pruning both scans.
	Excludes []string
}

// ProgressFunc is notified once per file, before the file is parsed.
// total is the current length of the worklist and may grow between calls.
type ProgressFunc func(current, total int, file CanonicalPath)

// Option configures a resolution.
type Option func(*options)

type options struct {
	progress      ProgressFunc
	logger        *log.Logger
	contentReader ContentReader
	statCacheSize int
	scanWorkers   int
}

// WithProgress registers a progress observer.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithContentReader replaces the filesystem reader used to load parsed files.
func WithContentReader(reader ContentReader) Option {
	return func(o *options) {
		if reader != nil {
			o.contentReader = reader
		}
	}
}

// WithStatCacheSize bounds the number of memoized filesystem probes.
func WithStatCacheSize(size int) Option {
	return func(o *options) {
		o.statCacheSize = size
	}
}

// WithScanWorkers bounds how many roots are scanned concurrently.
func WithScanWorkers(workers int) Option {
	return func(o *options) {
		o.scanWorkers = workers
	}
}

// Resolve computes the include folders needed so every include below
// settings.ToParseFolders resolves. Missing folders, unreadable files and
// unresolvable includes are reported in the Result; the returned error is
// only set for invalid settings such as a malformed exclude pattern.
func Resolve(settings Settings, opts ...Option) (*Result, error) {
	o := options{
		logger:        log.New(io.Discard),
		contentReader: FilesystemContentReader(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	scanner, err := NewScanner(settings.Excludes, o.scanWorkers, o.logger)
	if err != nil {
		return nil, err
	}

	e := newEngine(o)
	e.declareIncludeFolders(settings.IncludeFolders)

	toParse, err := scanner.Scan(settings.ToParseFolders)
	if err != nil {
		return nil, err
	}
	e.addInvalidPaths(toParse.InvalidRoots)

	resolveFiles, err := scanner.Scan(settings.ResolveFolders)
	if err != nil {
		return nil, err
	}
	e.addInvalidPaths(resolveFiles.InvalidRoots)
	e.index = NewResolveIndex(resolveFiles.Files)

	o.logger.Debug("scan complete",
		"files", len(toParse.Files),
		"indexed", e.index.Len(),
		"includeFolders", len(e.declaredFolders))

	for _, f := range toParse.Files {
		e.enqueue(f)
	}
	e.run()

	return aggregate(e), nil
}
