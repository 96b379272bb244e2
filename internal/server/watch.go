package server

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/vitrine/pkg/observability"
)

// rebuildDelay is how long the watcher waits after the last change before
// rebuilding. Editors fire several events per save, and one rebuild at the
// end covers them all.
const rebuildDelay = 500 * time.Millisecond

// Watch rebuilds the site whenever files under the content source change.
// It blocks until ctx is cancelled. Sources without local files (such as
// mongo) have nothing to watch, so Watch returns immediately.
func (s *Server) Watch(ctx context.Context) error {
	root, err := s.watchRoot()
	if err != nil {
		return fmt.Errorf("resolve watch root: %w", err)
	}
	if root == "" {
		s.logger.Info("source has no local files, watching disabled",
			"hint", "POST /__rebuild to refresh remote content")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addDirs(watcher, root); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	s.logger.Info("watching for changes", "path", root)

	var rebuildTimer *time.Timer
	defer func() {
		if rebuildTimer != nil {
			rebuildTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			// New directories need their own watch before changes inside
			// them become visible.
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					s.logger.Warn("cannot watch new directory", "path", event.Name, "error", err)
				}
			}

			s.logger.Debug("change detected", "path", event.Name, "op", event.Op.String())

			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			trigger := event.Name
			rebuildTimer = time.AfterFunc(rebuildDelay, func() {
				s.rebuildFromWatch(ctx, trigger)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

func (s *Server) rebuildFromWatch(ctx context.Context, trigger string) {
	start := time.Now()
	err := s.rebuild(ctx, false)
	observability.Server().OnRebuild(ctx, trigger, time.Since(start), err)
	if err != nil {
		s.logger.Error("rebuild failed", "trigger", trigger, "error", err)
		return
	}
	s.logger.Info("rebuilt after change", "trigger", trigger, "duration", time.Since(start))
}

// watchRoot returns the directory to watch for the configured source, or an
// empty string when the source has no local files.
func (s *Server) watchRoot() (string, error) {
	path := s.opts.Source.Path
	if path == "" {
		return "", nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return path, nil
	}
	// Editors replace files on save rather than writing in place, so watch
	// the parent directory instead of the file itself.
	return filepath.Dir(path), nil
}

// addDirs registers root and every directory below it with the watcher.
// fsnotify does not recurse on its own.
func addDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
