// Package filewatch notifies the editor when the file it is showing is
// modified outside of it, so the content can be reloaded.
package filewatch

import (
	"context"
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watcher follows a single file and invokes a callback on external
// writes. The callback runs on the watcher goroutine; callers touching
// UI state must marshal the work onto the main thread themselves.
type Watcher struct {
	watcher  *fsnotify.Watcher
	cancel   context.CancelFunc
	onChange func(path string)
}

// New creates a watcher delivering change notifications to onChange.
func New(onChange func(path string)) *Watcher {
	return &Watcher{onChange: onChange}
}

// Watch starts following a file, replacing any previous watch.
func (w *Watcher) Watch(path string) error {
	w.Stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go func() {
		defer watcher.Close()

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write && w.onChange != nil {
					w.onChange(event.Name)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("file watcher error: %v", err)

			case <-ctx.Done():
				return
			}
		}
	}()

	return watcher.Add(path)
}

// Stop stops following the current file.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	if w.watcher != nil {
		w.watcher.Close()
		w.watcher = nil
	}
}
