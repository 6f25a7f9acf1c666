package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/logger"
)

// FilesWatcher watches the JSON definition files directory and triggers
// rebuild callbacks when a definition file changes.
type FilesWatcher struct {
	dir            string
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	done           chan struct{}
}

// ChangeCallback is called with the path of the changed file after the
// debounce period elapses.
type ChangeCallback func(path string) error

// NewFilesWatcher creates a watcher over the given definition directory.
func NewFilesWatcher(dir string) (*FilesWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch files directory %s", dir)
	}

	return &FilesWatcher{
		dir:     dir,
		watcher: watcher,
		// Editors write JSON files in bursts; coalesce them.
		debouncePeriod: 500 * time.Millisecond,
		done:           make(chan struct{}),
	}, nil
}

// OnChange registers a callback to run when a definition file changes.
func (fw *FilesWatcher) OnChange(callback ChangeCallback) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.callbacks = append(fw.callbacks, callback)
}

// Start begins watching. It returns immediately; events are handled on a
// background goroutine until Stop is called.
func (fw *FilesWatcher) Start() {
	go fw.loop()
}

// Stop terminates the watcher and releases the underlying fsnotify handle.
func (fw *FilesWatcher) Stop() error {
	close(fw.done)
	return fw.watcher.Close()
}

func (fw *FilesWatcher) loop() {
	log := logger.Logger.Named("config.watcher")
	for {
		select {
		case <-fw.done:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			fw.scheduleCallbacks(event.Name)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Warnw("watcher error", "error", err)
		}
	}
}

func (fw *FilesWatcher) scheduleCallbacks(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	fw.debounceTimer = time.AfterFunc(fw.debouncePeriod, func() {
		fw.runCallbacks(path)
	})
}

func (fw *FilesWatcher) runCallbacks(path string) {
	fw.mu.RLock()
	callbacks := make([]ChangeCallback, len(fw.callbacks))
	copy(callbacks, fw.callbacks)
	fw.mu.RUnlock()

	log := logger.Logger.Named("config.watcher")
	for _, cb := range callbacks {
		if err := cb(path); err != nil {
			log.Warnw("change callback failed", "path", path, "error", err)
		}
	}
}
