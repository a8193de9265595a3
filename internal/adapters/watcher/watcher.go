package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/transit/internal/core/domain"
	"go.trai.ch/transit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProfileWatcher = (*ProfileWatcher)(nil)

// settleWindow is the debounce applied to file events. Editors typically
// save via truncate-then-write or write-then-rename, producing bursts.
const settleWindow = 250 * time.Millisecond

// ProfileWatcher watches the configuration file using fsnotify. It watches
// the containing directory rather than the file itself so atomic-rename
// saves keep being observed after the inode changes.
type ProfileWatcher struct {
	fsWatcher *fsnotify.Watcher
	log       ports.Logger
	debounce  *Debouncer
}

// NewProfileWatcher creates a new configuration file watcher.
func NewProfileWatcher(log ports.Logger) (*ProfileWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	return &ProfileWatcher{
		fsWatcher: fsWatcher,
		log:       log,
	}, nil
}

// Start begins watching path and invokes onChange, debounced, whenever the
// file is written, created or renamed.
func (w *ProfileWatcher) Start(ctx context.Context, path string, onChange func()) error {
	w.debounce = NewDebouncer(settleWindow, onChange)

	if err := w.fsWatcher.Add(filepath.Dir(path)); err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	go w.processEvents(ctx, filepath.Clean(path))
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *ProfileWatcher) Stop() error {
	return w.fsWatcher.Close()
}

func (w *ProfileWatcher) processEvents(ctx context.Context, path string) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounce.Trigger()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.log != nil {
				w.log.Warn("profile watcher error: " + err.Error())
			}
		}
	}
}
