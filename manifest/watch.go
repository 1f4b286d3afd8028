package manifest

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs a callback whenever a watched manifest file is written.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func(path string)
	watching atomic.Bool // Stop flips this from outside the watch goroutine
}

// NewWatcher watches the given manifest paths. onChange is invoked from
// the watch goroutine with the path that changed.
func NewWatcher(paths []string, onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := fw.Add(p); err != nil {
			fw.Close()
			return nil, fmt.Errorf("error adding %s to watcher: %w", p, err)
		}
	}
	return &Watcher{watcher: fw, onChange: onChange}, nil
}

// Start begins delivering change events until Stop is called.
func (w *Watcher) Start() error {
	if !w.watching.CompareAndSwap(false, true) {
		return fmt.Errorf("already watching")
	}
	go w.watchLoop()
	return nil
}

// Stop closes the watcher and ends the watch loop.
func (w *Watcher) Stop() error {
	if !w.watching.CompareAndSwap(true, false) {
		log.Println("not watching")
	}
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for w.watching.Load() {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write == fsnotify.Write {
		if strings.HasSuffix(event.Name, ".yaml") || strings.HasSuffix(event.Name, ".yml") {
			// editors often fire several writes for one save; let them settle
			time.Sleep(100 * time.Millisecond)
			w.onChange(event.Name)
		}
	}
}
