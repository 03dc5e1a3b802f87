package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/LegacyCodeHQ/includeresolver/includes"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":  true,
	".svn":  true,
	".idea": true,
	".vs":   true,
}

// watchAndResolve calls rebuild once the filesystem under roots has been quiet
// for debounceInterval after a source file changed. It returns when ctx is done.
func watchAndResolve(ctx context.Context, roots, excludes []string, rebuild func(), logger *log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range roots {
		if err := addWatchDirs(watcher, root, excludes); err != nil {
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				addIfDirectory(watcher, event.Name, excludes)
			}

			if !isRelevantChange(event) {
				continue
			}
			logger.Debug("source changed", "path", event.Name, "op", event.Op.String())

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, rebuild)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		}
	}
}

func isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return includes.IsSourceFile(event.Name)
}

func addWatchDirs(watcher *fsnotify.Watcher, root string, excludes []string) error {
	return addWatchDirsWithAdder(root, excludes, watcher.Add)
}

// addWatchDirsWithAdder registers root and every directory below it that is
// neither skipped nor excluded. Folders that vanish during the walk are ignored.
func addWatchDirsWithAdder(root string, excludes []string, add func(string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (skippedDirs[d.Name()] || includes.Excluded(root, path, excludes)) {
			return filepath.SkipDir
		}
		if err := add(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	})
}

func addIfDirectory(watcher *fsnotify.Watcher, path string, excludes []string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	_ = addWatchDirs(watcher, path, excludes)
}
