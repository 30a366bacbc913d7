// Package watch reports changes to a layout file
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups the burst of events an editor produces when saving
const DefaultDebounce = 150 * time.Millisecond

// pollInterval drives the modification-time check used as a backup for
// filesystems that drop notifications
const pollInterval = 2 * time.Second

// WatcherInterface defines the interface for layout watchers
type WatcherInterface interface {
	Changes() <-chan string
	Errors() <-chan error
	Close() error
}

// Watcher monitors one file and sends its path after each settled change
type Watcher struct {
	watcher    *fsnotify.Watcher
	filePath   string
	debounce   time.Duration
	modTime    time.Time
	changeChan chan string
	errorChan  chan error
	done       chan struct{}
}

// NewWatcher starts watching filePath with DefaultDebounce
func NewWatcher(filePath string) (*Watcher, error) {
	return NewWatcherWithDebounce(filePath, DefaultDebounce)
}

// NewWatcherWithDebounce starts watching filePath. The containing directory
// is watched so that editors replacing the file by rename are noticed.
func NewWatcherWithDebounce(filePath string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", filePath, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat layout file: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher:    fsWatcher,
		filePath:   abs,
		debounce:   debounce,
		modTime:    info.ModTime(),
		changeChan: make(chan string, 1),
		errorChan:  make(chan error, 10),
		done:       make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

// watch runs the file watching loop
func (w *Watcher) watch() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	defer close(w.changeChan)
	defer close(w.errorChan)

	var settle <-chan time.Time
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	arm := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.NewTimer(w.debounce)
		settle = timer.C
	}

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			if w.modified() {
				arm()
			}

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				arm()
			}

		case <-settle:
			settle = nil
			if _, err := os.Stat(w.filePath); err != nil {
				// mid-rename; the Create that follows re-arms the timer
				continue
			}
			w.modified()
			w.notify()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errorChan <- err:
			default:
			}
		}
	}
}

// modified refreshes the recorded modification time and reports whether it moved
func (w *Watcher) modified() bool {
	info, err := os.Stat(w.filePath)
	if err != nil {
		return false
	}
	if info.ModTime().Equal(w.modTime) {
		return false
	}
	w.modTime = info.ModTime()
	return true
}

// notify sends the path without blocking; one pending change is enough
func (w *Watcher) notify() {
	select {
	case w.changeChan <- w.filePath:
	default:
	}
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.filePath
}

// Changes returns a channel receiving the file path after each change
func (w *Watcher) Changes() <-chan string {
	return w.changeChan
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching the file
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		// Already closed
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}

// TestWatcher is a helper for testing that provides direct control over channels
type TestWatcher struct {
	changeChan chan string
	errorChan  chan error
	closed     bool
	mu         sync.Mutex
}

// NewTestWatcher creates a test watcher with controllable channels
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		changeChan: make(chan string, 10),
		errorChan:  make(chan error, 10),
	}
}

func (tw *TestWatcher) Changes() <-chan string {
	return tw.changeChan
}

func (tw *TestWatcher) Errors() <-chan error {
	return tw.errorChan
}

func (tw *TestWatcher) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return nil
	}
	tw.closed = true
	close(tw.changeChan)
	close(tw.errorChan)
	return nil
}

// SendChange sends a test change notification
func (tw *TestWatcher) SendChange(path string) {
	tw.changeChan <- path
}

// SendError sends a test error to the watcher
func (tw *TestWatcher) SendError(err error) {
	tw.errorChan <- err
}
