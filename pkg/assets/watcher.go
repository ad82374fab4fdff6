package assets

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"glsandbox/internal/logger"
)

// Watcher reports changes to a set of files. Events are delivered on a
// channel that the render thread drains between frames.
type Watcher struct {
	fs      *fsnotify.Watcher
	files   map[string]bool
	changes chan string
	done    chan struct{}
	logger  *logger.Logger
}

// NewWatcher watches the directories holding files and reports writes to
// any of the files themselves.
func NewWatcher(log *logger.Logger, files ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}

	w := &Watcher{
		fs:      fsw,
		files:   make(map[string]bool),
		changes: make(chan string, 16),
		done:    make(chan struct{}),
		logger:  log,
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs := absPath(f)
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	// Editors often replace files instead of writing them, so watch the directory
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "watch %s", dir)
		}
	}

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path := absPath(event.Name)
			if !w.files[path] {
				continue
			}
			select {
			case w.changes <- path:
			default:
				// Already queued changes trigger the same reload
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warnf("File watcher: %v", err)
		}
	}
}

// Changes returns the channel of changed file paths
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Drain returns the distinct paths changed since the last call without blocking
func (w *Watcher) Drain() []string {
	var paths []string
	seen := make(map[string]bool)
	for {
		select {
		case path := <-w.changes:
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
		default:
			return paths
		}
	}
}

// Close stops watching and waits for the event goroutine to exit
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func samePath(a, b string) bool {
	return absPath(a) == absPath(b)
}
