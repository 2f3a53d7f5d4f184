package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReevaluatesOnChange(t *testing.T) {
	toolsDir := t.TempDir()
	outDir := t.TempDir()
	toolDir := writeTool(t, toolsDir, "alpha", nil)

	watcher, err := NewWatcher(newTestRunner(), toolsDir, outDir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))
	defer watcher.Stop()

	// A new code file lands in the tool directory.
	codePath := filepath.Join(toolDir, "basic_gpio.c")
	require.NoError(t, os.WriteFile(codePath, []byte(strongSource), 0644))

	resultPath := filepath.Join(outDir, "alpha_results.json")
	require.Eventually(t, func() bool {
		_, err := os.Stat(resultPath)
		return err == nil
	}, 10*time.Second, 100*time.Millisecond, "expected re-evaluation artifact")
}

func TestWatcherStopReturnsAfterFailedStart(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	watcher, err := NewWatcher(newTestRunner(), missing, t.TempDir())
	require.NoError(t, err)

	require.Error(t, watcher.Start(context.Background()))

	// The event loop never launched; Stop must not block on it.
	done := make(chan struct{})
	go func() {
		watcher.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after failed Start")
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	watcher, err := NewWatcher(newTestRunner(), t.TempDir(), t.TempDir())
	require.NoError(t, err)
	require.NoError(t, watcher.Start(context.Background()))

	watcher.Stop()
	watcher.Stop()
}
