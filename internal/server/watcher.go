package server

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 500 * time.Millisecond

// watchContent watches the content tree and calls reload after changes
// settle. Editors fire bursts of events per save, hence the debounce.
// Returns the watcher so the caller can Close it on shutdown.
func watchContent(dir string, logger *log.Logger, reload func()) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if werr := watcher.Add(path); werr != nil {
				logger.Printf("cannot watch %s: %v", path, werr)
			}
		}
		return nil
	})
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}

	go func() {
		var timer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				// New subdirectories are not watched automatically.
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := watcher.Add(event.Name); err != nil {
							logger.Printf("cannot watch %s: %v", event.Name, err)
						}
					}
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() {
					logger.Printf("content changed (%s), reloading", event.Name)
					reload()
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Printf("watcher error: %v", err)
			}
		}
	}()

	return watcher, nil
}
