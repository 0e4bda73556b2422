package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/lone-faerie/tempconv/log"
)

// Watch invokes fn with the freshly loaded Config whenever the file
// at path is rewritten, so a running session can pick up log-level
// changes without restarting. The watch is on the parent directory
// since most editors replace the file on save. The returned stop
// function releases the watcher.
func Watch(path string, fn func(*Config)) (stop func() error, err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	path = filepath.Clean(path)
	if err = w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	go watch(w, path, fn)

	return w.Close, nil
}

func watch(w *fsnotify.Watcher, path string, fn func(*Config)) {
	for {
		select {
		case e, ok := <-w.Events:
			if !ok {
				return
			}

			if filepath.Clean(e.Name) != path {
				continue
			}

			if !e.Op.Has(fsnotify.Write) && !e.Op.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(path)
			if err != nil {
				log.Error("Reloading config", err, "path", path)
				continue
			}

			log.Info("Config reloaded", "path", path)
			fn(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}

			log.Error("Watching config", err, "path", path)
		}
	}
}
