package model

import (
	"path/filepath"

	"fisheye/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// WatchConfig watches the given files and signals on the returned channel
// whenever one of them is written or recreated. The parent directories are
// watched so editors that replace files on save are seen too.
func WatchConfig(paths []string) (<-chan struct{}, func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	wanted := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		clean := filepath.Clean(p)
		wanted[clean] = struct{}{}
		dirs[filepath.Dir(clean)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			logging.Warn("TUI", "Cannot watch %s: %v", dir, err)
		}
	}

	events := make(chan struct{}, 1)
	go func() {
		defer close(events)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if _, ok := wanted[filepath.Clean(event.Name)]; !ok {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				// coalesce bursts of writes
				select {
				case events <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Error("TUI", err, "Config watcher failed")
			}
		}
	}()

	return events, watcher.Close, nil
}

// WaitForConfigChangeCmd waits for the next signal on ch.
func WaitForConfigChangeCmd(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return ConfigChangedMsg{}
	}
}
