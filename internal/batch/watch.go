package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"modeval/internal/logging"
)

// Watcher re-runs a tool's evaluation whenever a .c file in its directory
// changes. It watches the tools directory and each tool subdirectory, with
// per-tool debouncing so a burst of saves triggers one evaluation.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	runner      *Runner
	toolsDir    string
	outDir      string
	debounceMap map[string]time.Time // tool dir -> last event
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewWatcher creates a watcher over toolsDir; artifacts are rewritten into
// outDir on each re-evaluation.
func NewWatcher(runner *Runner, toolsDir, outDir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:     fsw,
		runner:      runner,
		toolsDir:    toolsDir,
		outDir:      outDir,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a goroutine
// until Stop or context cancellation. On a setup failure the watcher is
// closed and left stopped, so Stop stays safe to call.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.toolsDir); err != nil {
		w.abortStart()
		return err
	}

	// fsnotify does not recurse; each existing tool directory is added
	// explicitly. Directories created later are picked up in handleEvent.
	entries, err := os.ReadDir(w.toolsDir)
	if err != nil {
		w.abortStart()
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(w.toolsDir, e.Name())
		if err := w.watcher.Add(dir); err != nil {
			logging.BatchWarn("watch %s: %v", dir, err)
		}
	}
	logging.Batch("watching %s for code changes", w.toolsDir)

	go w.run(ctx)
	return nil
}

// abortStart rolls back a failed Start: the event loop never launched, so
// the running flag is cleared and the fsnotify handle released without
// touching stopCh/doneCh.
func (w *Watcher) abortStart() {
	w.mu.Lock()
	w.running = false
	w.mu.Unlock()

	if err := w.watcher.Close(); err != nil {
		logging.BatchError("closing watcher: %v", err)
	}
}

// Stop stops the watcher and waits for the event loop to drain.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.BatchError("closing watcher: %v", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

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
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.BatchError("watcher error: %v", err)
		case <-ticker.C:
			w.processDebounced()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// A new tool directory starts being watched immediately.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() &&
			filepath.Dir(event.Name) == w.toolsDir {
			if err := w.watcher.Add(event.Name); err != nil {
				logging.BatchWarn("watch %s: %v", event.Name, err)
			}
			return
		}
	}

	if !strings.HasSuffix(event.Name, ".c") {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	toolDir := filepath.Dir(event.Name)
	if filepath.Dir(toolDir) != w.toolsDir {
		return
	}

	w.mu.Lock()
	w.debounceMap[toolDir] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) processDebounced() {
	w.mu.Lock()
	now := time.Now()
	var settled []string
	for dir, at := range w.debounceMap {
		if now.Sub(at) >= w.debounceDur {
			settled = append(settled, dir)
			delete(w.debounceMap, dir)
		}
	}
	w.mu.Unlock()

	for _, dir := range settled {
		tool := filepath.Base(dir)
		logging.Batch("re-evaluating %s after code change", tool)
		if _, err := w.runner.EvaluateTool(tool, dir, w.outDir); err != nil {
			logging.BatchError("re-evaluating %s: %v", tool, err)
		}
	}
}
