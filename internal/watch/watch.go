// Package watch reloads an nfo.Document whenever its file changes on disk.
package watch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stlalpha/nfoview/internal/nfo"
)

// DefaultDebounce collapses bursts of writes into one reload.
const DefaultDebounce = 500 * time.Millisecond

// Watcher owns a Document and guards it with a read-write lock. Readers go
// through View; reloads take the write lock only to swap content in.
type Watcher struct {
	mu   sync.RWMutex
	doc  *nfo.Document
	path string

	watcher  *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once

	debounce time.Duration
	onReload func(error)

	timerMu sync.Mutex
	timer   *time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period after the last event before reloading.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithOnReload registers fn to run after every reload attempt with its
// result. fn runs on the watcher goroutine.
func WithOnReload(fn func(error)) Option {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// New starts watching path and reloads doc on every change. doc should
// already hold the file's content; New does not load it.
func New(path string, doc *nfo.Document, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		doc:      doc,
		path:     abs,
		watcher:  fw,
		done:     make(chan struct{}),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}

	// Editors often replace the file instead of writing it, so the
	// directory is watched and events are filtered by name.
	dir := filepath.Dir(abs)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Printf("INFO: Watching %s for changes (auto-reload enabled)", abs)

	go w.watchLoop()
	return w, nil
}

// View runs fn with the Document under the read lock.
func (w *Watcher) View(fn func(*nfo.Document)) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	fn(w.doc)
}

// Reload loads the file now. On failure the Document keeps its content.
func (w *Watcher) Reload() error {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return &nfo.LoadError{Op: nfo.OpRead, Path: w.path, Err: err}
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.doc.LoadBytes(data, w.path)
}

// Stop ends watching. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.watcher.Close()

		w.timerMu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.timerMu.Unlock()
		log.Printf("INFO: File watcher for %s stopped", w.path)
	})
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("ERROR: File watcher error: %v", err)

		case <-w.done:
			return
		}
	}
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.handleChange)
}

func (w *Watcher) handleChange() {
	select {
	case <-w.done:
		return
	default:
	}

	log.Printf("INFO: Change detected, reloading %s", filepath.Base(w.path))
	err := w.Reload()
	if err != nil {
		log.Printf("ERROR: Failed to reload %s: %v", w.path, err)
	} else {
		log.Printf("INFO: %s reloaded successfully", filepath.Base(w.path))
	}
	if w.onReload != nil {
		w.onReload(err)
	}
}
