package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/oh-my-opencode/portal/internal/opencode"
)

// EventType represents the type of file change event
type EventType int

const (
	ConfigChanged EventType = iota
	BackupCreated
)

// Event represents a file change event
type Event struct {
	Type EventType
	Path string
}

// Watcher watches the config document's directory for edits to the document
// itself and for new backup files appearing alongside it.
type Watcher struct {
	watcher    *fsnotify.Watcher
	Events     chan Event
	Errors     chan error
	done       chan struct{}
	mu         sync.Mutex
	running    bool
	configName string
}

// New creates a new file watcher
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		Events:  make(chan Event, 100),
		Errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// WatchConfig watches the directory containing the document at configPath.
// The whole directory is watched rather than the file, so edits that replace
// the file (the tool's own atomic saves included) keep getting reported.
func (w *Watcher) WatchConfig(configPath string) error {
	dir := filepath.Dir(configPath)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("config directory does not exist: %s", dir)
	}

	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	w.configName = filepath.Base(configPath)
	return nil
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.eventLoop()
}

// eventLoop processes file system events
func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Filter for write and create events
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			e := w.classifyEvent(event.Name)
			if e != nil {
				// Non-blocking send
				select {
				case w.Events <- *e:
				default:
					// Channel full, skip event
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Non-blocking error send
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}

// classifyEvent determines the event type based on the file path
func (w *Watcher) classifyEvent(path string) *Event {
	base := filepath.Base(path)

	if base == w.configName {
		return &Event{
			Type: ConfigChanged,
			Path: path,
		}
	}

	if strings.HasPrefix(base, w.configName+opencode.BackupInfix) {
		return &Event{
			Type: BackupCreated,
			Path: path,
		}
	}

	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	close(w.done)
	w.running = false
	return w.watcher.Close()
}

// Close is an alias for Stop
func (w *Watcher) Close() error {
	return w.Stop()
}
