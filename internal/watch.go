package internal

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-fetches the store and commits a snapshot whenever files under
// root change on disk, so external edits become undoable history. Events
// are debounced per burst.
type Watcher struct {
	store    *Store
	notify   *fsnotify.Watcher
	debounce time.Duration
	log      LogFunc
}

func NewWatcher(store *Store, log LogFunc) (*Watcher, error) {
	if log == nil {
		log = nopLog
	}

	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		store:    store,
		notify:   notify,
		debounce: 300 * time.Millisecond,
		log:      log,
	}

	if err := w.addRecursive(store.Root()); err != nil {
		notify.Close()
		return nil, err
	}

	return w, nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				w.log("root directory %q does not exist", root)
				return filepath.SkipAll
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.notify.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run blocks until ctx is cancelled, committing one snapshot per change
// burst.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.notify.Close()

	var pending *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.notify.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.notify.Add(event.Name)
				}
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
				!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if pending == nil {
				pending = time.AfterFunc(w.debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				pending.Reset(w.debounce)
			}

		case err, ok := <-w.notify.Errors:
			if !ok {
				return nil
			}
			w.log("watch error: %v", err)

		case <-fire:
			pending = nil
			if err := w.store.Fetch(); err != nil {
				w.log("fetch after change: %v", err)
				continue
			}
			if err := w.store.Clean(); err != nil {
				w.log("clean after change: %v", err)
				continue
			}
			w.store.Commit("watch: filesystem change")
		}
	}
}
