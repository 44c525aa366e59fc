// Package watch re-runs scheme checks when their files change.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config configures the file watcher
type Config struct {
	// Files are the scheme files to watch
	Files []string

	// Debounce is how long to wait for more changes before firing
	Debounce time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// Watcher watches a set of scheme files and emits one event per settled
// burst of changes. Editors that write via rename-and-replace are
// covered because the parent directories are watched, not the files.
type Watcher struct {
	config  Config
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Watched file set, keyed by cleaned path.
	files map[string]struct{}

	// Debouncing: collect changes before firing
	pendingMu sync.Mutex
	pending   map[string]struct{}

	// Output channel of changed file batches
	events chan []string
}

// NewWatcher creates a new file watcher
func NewWatcher(config Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}

	files := make(map[string]struct{}, len(config.Files))
	for _, f := range config.Files {
		files[filepath.Clean(f)] = struct{}{}
	}

	return &Watcher{
		config:  config,
		watcher: fsw,
		logger:  logger,
		files:   files,
		pending: make(map[string]struct{}),
		events:  make(chan []string, 16),
	}, nil
}

// Events returns the channel of changed file batches
func (w *Watcher) Events() <-chan []string {
	return w.events
}

// Start begins watching the scheme files for changes
func (w *Watcher) Start(ctx context.Context) error {
	dirs := make(map[string]struct{})
	for f := range w.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		w.logger.Debug("Watching directory", "path", dir)
	}

	go w.processEvents(ctx)

	w.logger.Info("File watcher started",
		"files", len(w.files),
		"debounce", w.config.Debounce)

	return nil
}

// Stop stops the watcher. The events channel is closed by the event
// loop once it drains, so a concurrent flush can never send on a
// closed channel.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing. It is the
// sole sender on the events channel and closes it on return.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	ticker := time.NewTicker(w.config.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// handleFSEvent accumulates a change to a watched file
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := filepath.Clean(event.Name)
	if _, ok := w.files[path]; !ok {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = struct{}{}
	w.pendingMu.Unlock()

	w.logger.Debug("File change detected",
		"path", path,
		"op", event.Op.String())
}

// flushPending emits one event for the accumulated changes
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	changed := make([]string, 0, len(w.pending))
	for path := range w.pending {
		changed = append(changed, path)
	}
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	sort.Strings(changed)

	select {
	case w.events <- changed:
		w.logger.Debug("Sent watch event", "files", changed)
	default:
		w.logger.Warn("Event channel full, dropping event", "files", changed)
	}
}
