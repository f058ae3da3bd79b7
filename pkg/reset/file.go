package reset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/togglekit/pkg/feature"
	"github.com/dmitrymomot/togglekit/pkg/logger"
)

// ErrWatchFailed indicates the file watcher could not be started.
var ErrWatchFailed = errors.New("failed to watch file")

// FileWatcher invalidates features whenever a file changes.
// The parent directory is watched so editors that replace the file on save
// are detected as well.
type FileWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	bus     *Bus
	log     *slog.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// WatchFile starts watching path until ctx is done or Close is called.
func WatchFile(ctx context.Context, path string, opts ...Option) (*FileWatcher, error) {
	o := applyOptions(opts)

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Join(ErrWatchFailed, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Join(ErrWatchFailed, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, errors.Join(ErrWatchFailed, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err))
	}

	w := &FileWatcher{
		path:    abs,
		watcher: watcher,
		bus:     NewBus(),
		log:     o.logger.With(logger.Component("reset"), logger.Source("file"), logger.Path(abs)),
		done:    make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

// Hook returns a reset hook bound to this watcher.
func (w *FileWatcher) Hook() feature.ResetFunc {
	return w.bus.Subscribe(All)
}

// Close stops the watcher. It is safe to call multiple times.
func (w *FileWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *FileWatcher) loop(ctx context.Context) {
	defer close(w.done)

	const changed = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			_ = w.watcher.Close()
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || event.Op&changed == 0 {
				continue
			}
			n := w.bus.ResetAll()
			w.log.Debug("file changed, features invalidated", slog.String("op", event.Op.String()), slog.Int("features", n))
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", logger.Error(err))
		}
	}
}
