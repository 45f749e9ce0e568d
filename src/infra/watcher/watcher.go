package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceSecs = 2

// CollectionWatcher monitors the collection export file and triggers a
// reload when it changes. Exports are rewritten atomically by most tools, so
// the parent directory is watched and events are filtered by file name.
type CollectionWatcher struct {
	watcher       *fsnotify.Watcher
	filePath      string
	onChange      func()
	debounceTimer *time.Timer
	debounceMutex sync.Mutex
	running       bool
	stopChan      chan struct{}
}

// NewCollectionWatcher creates a watcher that calls onChange after the file
// at filePath settles.
func NewCollectionWatcher(filePath string, onChange func()) (*CollectionWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &CollectionWatcher{
		watcher:  watcher,
		filePath: filePath,
		onChange: onChange,
		stopChan: make(chan struct{}),
	}, nil
}

// Start begins watching the export file for changes.
func (w *CollectionWatcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.filePath)
	slog.Info("Starting collection watcher", "file", w.filePath, "dir", dir)

	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	w.running = true
	go w.watchLoop(ctx)

	slog.Info("Collection watcher started successfully")
	return nil
}

// Stop stops the watcher.
func (w *CollectionWatcher) Stop() {
	if !w.running {
		return
	}

	slog.Info("Stopping collection watcher")
	w.running = false
	close(w.stopChan)

	w.debounceMutex.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.debounceMutex.Unlock()

	w.watcher.Close()
}

func (w *CollectionWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Collection watcher error", "error", err)

		case <-w.stopChan:
			return

		case <-ctx.Done():
			return
		}
	}
}

func (w *CollectionWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != filepath.Base(w.filePath) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("Collection file event", "op", event.Op.String(), "name", event.Name)

	// Exports are written in bursts; reload once the file settles.
	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(debounceSecs*time.Second, func() {
		if !w.running {
			return
		}
		slog.Info("Collection file changed, triggering reload", "file", w.filePath)
		w.onChange()
	})
}
