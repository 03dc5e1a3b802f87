package includes

import (
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultStatCacheSize = 8192

type entryKind int

const (
	entryMissing entryKind = iota
	entryFile
	entryDir
)

// statCache memoizes existence probes for the duration of one resolution.
// The filesystem is assumed not to change while the engine runs.
type statCache struct {
	entries *lru.Cache[string, entryKind]
}

func newStatCache(size int) *statCache {
	if size <= 0 {
		size = defaultStatCacheSize
	}

	// lru.New only fails for a non-positive size.
	entries, _ := lru.New[string, entryKind](size)
	return &statCache{entries: entries}
}

func (c *statCache) kind(path string) entryKind {
	if kind, ok := c.entries.Get(path); ok {
		return kind
	}

	kind := entryMissing
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			kind = entryDir
		} else {
			kind = entryFile
		}
	}

	c.entries.Add(path, kind)
	return kind
}

// isFile reports whether path exists and is not a directory.
func (c *statCache) isFile(path string) bool {
	return c.kind(path) == entryFile
}

func (c *statCache) isDir(path string) bool {
	return c.kind(path) == entryDir
}
