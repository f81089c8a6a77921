package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow is how long the inputs must stay quiet before a rerun.
const debounceWindow = 100 * time.Millisecond

const changeOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename | fsnotify.Remove

// watch calls run after every batch of changes to paths until ctx is done.
// The parent directories are watched rather than the files, so editors that
// save by replacing the file keep triggering. Runs never overlap.
func watch(ctx context.Context, paths []string, log *slog.Logger, run func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	files, err := watchDirs(w, paths)
	if err != nil {
		return err
	}
	log.Info("watching for changes", "files", len(files))

	timer := time.NewTimer(debounceWindow)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&changeOps == 0 || !files[filepath.Clean(ev.Name)] {
				continue
			}
			log.Debug("input changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(debounceWindow)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)

		case <-timer.C:
			if err := run(); err != nil {
				log.Error("generation failed", "error", err)
			}
		}
	}
}

// watchDirs adds the directory of every path to w and returns the set of
// absolute paths to react to.
func watchDirs(w *fsnotify.Watcher, paths []string) (map[string]bool, error) {
	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		files[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	return files, nil
}
