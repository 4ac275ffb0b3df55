package content

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// A path is reported once no further event for it has arrived within
// debounceWindow. Editors often write a file several times per save, and the
// reload must see the last write.
const (
	debounceWindow = 100 * time.Millisecond
	debounceTick   = 25 * time.Millisecond
)

// Watcher reports changes to a dataset file or directory. Each value on
// Events is the path of a changed data file. Events is closed once the
// watcher has stopped.
type Watcher struct {
	watcher *fsnotify.Watcher
	log     *zap.Logger
	target  string // file being watched, or "" for a whole directory

	Events  chan string
	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// NewWatcher watches path, which may be a dataset file or a directory of
// data files. A file is watched through its parent directory so that
// editors which replace the file on save are still seen. logger may be nil.
func NewWatcher(path string, isDir bool, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("content: watch %s: %w", path, err)
	}

	dir, target := path, ""
	if !isDir {
		dir, target = filepath.Dir(path), filepath.Clean(path)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("content: watch %s: %w", dir, err)
	}

	watcher := &Watcher{
		watcher: w,
		log:     logger.Named("watch"),
		target:  target,
		Events:  make(chan string, 16),
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go watcher.run()
	watcher.log.Debug("watching dataset", zap.String("dir", dir), zap.String("file", target))
	return watcher, nil
}

// Close stops the watcher and waits for its goroutine to exit. It is safe
// to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	defer close(w.Events)

	ticker := time.NewTicker(debounceTick)
	defer ticker.Stop()

	pending := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				pending[event.Name] = time.Now()
			}
		case now := <-ticker.C:
			for _, name := range settled(pending, now) {
				delete(pending, name)
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-w.closeCh:
			return
		}
	}
}

// settled returns the pending paths whose last event is at least
// debounceWindow old, sorted.
func settled(pending map[string]time.Time, now time.Time) []string {
	var names []string
	for name, last := range pending {
		if now.Sub(last) >= debounceWindow {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	if w.target != "" {
		return filepath.Clean(event.Name) == w.target
	}
	return IsDataFile(event.Name)
}
