package limits

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mindcleanse/go-mindcleanse/internal/core/model"
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

// Watcher publishes the full limit configuration whenever the settings
// surface rewrites it. The configuration is replaced atomically (temp file
// plus rename), so the watcher listens on the parent directory and filters
// for the document itself.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	changes chan []model.AppLimit
	done    chan struct{}
}

// NewWatcher starts watching the limit configuration for changes.
func NewWatcher(store *Store) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(store.Path())); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &Watcher{
		store:   store,
		watcher: watcher,
		changes: make(chan []model.AppLimit, 16),
		done:    make(chan struct{}),
	}
	go w.processEvents()
	return w, nil
}

// Changes returns the channel of configuration snapshots. It is closed when
// the watcher is closed.
func (w *Watcher) Changes() <-chan []model.AppLimit {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) processEvents() {
	defer close(w.changes)

	target := w.store.Path()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			util.LogDebugf("Limit configuration changed: %s", event.Op)
			select {
			case w.changes <- w.store.All():
			default:
				// Consumer is behind; drop the snapshot, the next read
				// reflects the latest state anyway.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			util.LogWarnf("Limit watcher error: %v", err)
		}
	}
}
