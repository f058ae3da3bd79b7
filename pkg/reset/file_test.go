package reset_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/togglekit/pkg/feature"
	"github.com/dmitrymomot/togglekit/pkg/reset"
)

func TestFileWatcher(t *testing.T) {
	t.Parallel()

	t.Run("invalidates on write", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "override")
		require.NoError(t, os.WriteFile(path, []byte("on"), 0o600))

		watcher, err := reset.WatchFile(context.Background(), path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = watcher.Close() })

		var calls atomic.Int32
		toggles, err := feature.New([]feature.Feature{{
			Name:    "override",
			Test:    countingTest(&calls),
			ResetOn: watcher.Hook(),
		}})
		require.NoError(t, err)

		_, err = toggles.Get("override")
		require.NoError(t, err)
		require.EqualValues(t, 1, calls.Load())

		require.NoError(t, os.WriteFile(path, []byte("off"), 0o600))

		assert.Eventually(t, func() bool {
			_, err := toggles.Get("override")
			return err == nil && calls.Load() >= 2
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("ignores sibling files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "override")
		require.NoError(t, os.WriteFile(path, []byte("on"), 0o600))

		watcher, err := reset.WatchFile(context.Background(), path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = watcher.Close() })

		var invalidations atomic.Int32
		watcher.Hook()(func() { invalidations.Add(1) })

		require.NoError(t, os.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0o600))
		time.Sleep(100 * time.Millisecond)
		assert.Zero(t, invalidations.Load())
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := reset.WatchFile(context.Background(), filepath.Join(t.TempDir(), "missing", "override"))
		assert.ErrorIs(t, err, reset.ErrWatchFailed)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()
		watcher, err := reset.WatchFile(context.Background(), filepath.Join(t.TempDir(), "override"))
		require.NoError(t, err)
		assert.NoError(t, watcher.Close())
		assert.NoError(t, watcher.Close())
	})
}
