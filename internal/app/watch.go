package app

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/vk/goalwalker/internal/ctxlog"
)

// reloadDebounce coalesces the bursts of events editors produce on save.
const reloadDebounce = 200 * time.Millisecond

var mapExtensions = []string{".hcl", ".yaml", ".yml"}

// watchMaps reloads the map whenever a map file under cfg.MapPaths changes.
// A map that fails to load or build is logged and the previous one stays in
// service. The returned func stops watching.
func (a *App) watchMaps(ctx context.Context) (func(), error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := a.logger
	if len(a.config.MapPaths) == 0 {
		logger.Debug("Builtin map in use, nothing to watch.")
		return func() {}, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, path := range a.config.MapPaths {
		if err := addWatch(watcher, path); err != nil {
			watcher.Close()
			return nil, err
		}
	}
	logger.Info("Watching map files for changes.", "paths", a.config.MapPaths)

	done := make(chan struct{})
	go a.watchLoop(ctx, watcher, done)

	return func() {
		close(done)
		watcher.Close()
	}, nil
}

// addWatch registers a directory tree, or the directory holding a file.
// Watching the parent survives editors that replace files on save.
func addWatch(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(path))
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}

func (a *App) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, done <-chan struct{}) {
	logger := ctxlog.FromContext(ctx)
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isMapEvent(event) {
				continue
			}
			logger.Debug("Map file changed.", "file", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addWatch(watcher, event.Name)
				}
			}
			timer.Reset(reloadDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Map watcher error.", "error", err)
		case <-timer.C:
			a.reload(ctx)
		}
	}
}

func isMapEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			return true
		}
	}
	return slices.Contains(mapExtensions, strings.ToLower(filepath.Ext(event.Name)))
}

// reload swaps in a freshly loaded map, or keeps the current one when the
// new one is broken.
func (a *App) reload(ctx context.Context) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := a.logger

	m, err := a.loadMap(ctx)
	a.metrics.ObserveReload(err)
	if err != nil {
		logger.Error("Map reload failed, keeping the previous map.", "error", err)
		return
	}
	a.current.Store(m)
	logger.Info("🗺️ Map reloaded.", "cities", len(m.model.Cities), "trips", len(m.model.Trips))
}
