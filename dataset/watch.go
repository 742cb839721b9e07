package dataset

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher observes the dataset directory and invokes a callback when a
// backing file changes. It is proactive refresh only: the Store's
// mtime watermark remains the mechanism that decides whether a Load
// actually re-parses.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	store       *Store
	onChange    func()
	logger      *zap.Logger
	debounceDur time.Duration
	lastEvent   map[string]time.Time
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewWatcher creates a Watcher over the store's dataset directory.
// onChange runs on the watcher goroutine after each debounced change;
// a typical callback calls store.Load and re-validates.
func NewWatcher(store *Store, onChange func(), logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Watcher{
		watcher:     fw,
		store:       store,
		onChange:    onChange,
		logger:      logger,
		debounceDur: 500 * time.Millisecond, // editors save in bursts
		lastEvent:   make(map[string]time.Time),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; events are handled on a
// goroutine until Stop is called or the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := w.store.Dir()
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.logger.Info("watching dataset directory", zap.String("dir", dir))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	_ = w.watcher.Close()
	<-w.doneCh
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	watched := make(map[string]struct{}, 7)
	for _, p := range w.store.Paths().all() {
		watched[filepath.Clean(p)] = struct{}{}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			path := filepath.Clean(event.Name)
			if _, ok := watched[path]; !ok {
				continue
			}
			if w.debounced(path) {
				continue
			}
			w.logger.Debug("dataset file changed",
				zap.String("file", filepath.Base(path)),
				zap.String("op", event.Op.String()))
			if w.onChange != nil {
				w.onChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("dataset watcher error", zap.Error(err))
		}
	}
}

// debounced reports whether the event for path arrived inside the
// debounce window of the previous one.
func (w *Watcher) debounced(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	if last, ok := w.lastEvent[path]; ok && now.Sub(last) < w.debounceDur {
		return true
	}
	w.lastEvent[path] = now
	return false
}
