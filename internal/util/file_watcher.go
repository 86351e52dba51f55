package util

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"strings-diff/internal/logging"
)

// FileWatcher watches a fixed set of files and calls an action once
// events for them have settled down for the debounce duration.
type FileWatcher struct {
	Paths      []string
	Debounce   time.Duration
	actionLock sync.Mutex
}

func NewFileWatcher(paths []string, debounce time.Duration) (*FileWatcher, error) {
	absPaths := make([]string, 0, len(paths))
	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		absPaths = append(absPaths, filepath.Clean(absPath))
	}

	return &FileWatcher{
		Paths:      absPaths,
		Debounce:   debounce,
		actionLock: sync.Mutex{},
	}, nil
}

// Watch blocks until ctx is cancelled or the underlying watcher fails to start.
// The action is called with the path of the last changed file.
func (fileWatcher *FileWatcher) Watch(ctx context.Context, action func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func(watcher *fsnotify.Watcher) {
		err := watcher.Close()
		if err != nil {
			logging.Error("%v", err)
		}
	}(watcher)

	// editors often replace files instead of writing them,
	// so the parent directories are watched instead of the files
	for _, dir := range fileWatcher.directories() {
		err = watcher.Add(dir)
		if err != nil {
			return err
		}
		logging.Debug("Watching directory %s", dir)
	}

	var timer *time.Timer
	var timerC <-chan time.Time
	var lastEvent string
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		// watch for events
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !fileWatcher.isWatched(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}
			logging.Debug("File event: %s", event.String())
			lastEvent = filepath.Clean(event.Name)
			timer = resetTimer(timer, fileWatcher.Debounce)
			timerC = timer.C
		case <-timerC:
			timerC = nil
			fileWatcher.actionLock.Lock()
			action(lastEvent)
			fileWatcher.actionLock.Unlock()
		// watch for errors
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Error("%v", err)
		}
	}
}

func (fileWatcher *FileWatcher) directories() []string {
	var dirs []string
	for _, path := range fileWatcher.Paths {
		dirs = append(dirs, filepath.Dir(path))
	}
	return UniqueSlice(dirs)
}

func (fileWatcher *FileWatcher) isWatched(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return ContainsString(fileWatcher.Paths, filepath.Clean(absPath))
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
	return timer
}
