package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/wb-go/wbf/logger"
)

type calendarSyncer interface {
	SyncFromProvider(ctx context.Context) (bool, error)
}

// FileWatcher watches the local calendar file and pulls its contents
// into the store when some other process writes it. Only used with the
// file backend; remote backends rely on the sync scheduler instead.
type FileWatcher struct {
	path     string
	syncer   calendarSyncer
	logger   logger.Logger
	debounce time.Duration
}

func New(path string, syncer calendarSyncer, log logger.Logger) *FileWatcher {
	return &FileWatcher{
		path:     path,
		syncer:   syncer,
		logger:   log,
		debounce: 500 * time.Millisecond,
	}
}

// Start blocks until ctx is cancelled. The parent directory is watched
// rather than the file itself so atomic rename-into-place writes (and
// recreation after deletion) keep being observed.
func (w *FileWatcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.logger.Info("file watcher started",
		logger.String("path", w.path),
	)

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("file watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// Editors and atomic writers fire bursts of events; let
			// them settle before re-reading.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			changed, err := w.syncer.SyncFromProvider(ctx)
			if err != nil {
				w.logger.Error("reload after file change failed",
					logger.String("error", err.Error()),
				)
				continue
			}
			if changed {
				w.logger.Info("calendar reloaded after external file change")
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error",
				logger.String("error", err.Error()),
			)
		}
	}
}
