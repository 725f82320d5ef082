// Package watch re-invokes a callback whenever a watched file changes on
// disk, debouncing the burst of events a single save can produce.
package watch

import (
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher wraps an fsnotify.Watcher and a debounce timer.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
}

// New starts watching the given files (each added individually; fsnotify
// does not watch directories recursively, and none is needed here) and
// calls onChange, with the path that changed, no more than once per
// debounce window.
func New(paths []string, debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{fsw: fsw, debounce: debounce, done: make(chan struct{})}
	go w.run(onChange)
	return w, nil
}

func (w *Watcher) run(onChange func(path string)) {
	pending := map[string]*time.Timer{}
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			path := ev.Name
			if t, ok := pending[path]; ok {
				t.Stop()
			}
			pending[path] = time.AfterFunc(w.debounce, func() { onChange(path) })
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and its goroutine.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
