package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// LevelWatcher reloads a level table file whenever it changes on disk.
// Reloaded tables are delivered on Tables; the game drains it between ticks.
type LevelWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Tables  chan *LevelTable
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchLevels starts watching the directory holding path.
func WatchLevels(path string) (*LevelWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors replace files on save, so watch the directory rather than the file.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	lw := &LevelWatcher{
		watcher: w,
		path:    filepath.Clean(path),
		Tables:  make(chan *LevelTable, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go lw.run()
	return lw, nil
}

func (w *LevelWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *LevelWatcher) run() {
	// Loads wait until the file has been quiet for watchDebounce, so an
	// editor's truncate and write land as one reload.
	settle := time.NewTimer(watchDebounce)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			settle.Reset(watchDebounce)
		case <-settle.C:
			table, err := LoadLevels(w.path)
			if err != nil {
				w.send(w.Errors, err)
				continue
			}
			w.replace(table)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(w.Errors, err)
		case <-w.closeCh:
			return
		}
	}
}

// replace keeps only the newest table in the channel.
func (w *LevelWatcher) replace(t *LevelTable) {
	select {
	case <-w.Tables:
	default:
	}
	select {
	case w.Tables <- t:
	case <-w.closeCh:
	}
}

func (w *LevelWatcher) send(ch chan error, err error) {
	select {
	case ch <- err:
	default:
	}
}
