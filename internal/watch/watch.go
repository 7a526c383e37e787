// Package watch reports changes to a single file, debounced so that an
// editor's burst of events for one save yields one notification.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/fretsmart/internal/errors"
	"github.com/Iron-Ham/fretsmart/internal/logging"
)

// DefaultDebounce is how long the watcher waits for events to settle.
const DefaultDebounce = 50 * time.Millisecond

// Watcher watches one file. It watches the file's directory so that the
// file being replaced (write to temp, rename over) is still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   *logging.Logger
}

// New creates a Watcher for path. A nil logger disables logging.
func New(path string, logger *logging.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}
	if logger == nil {
		logger = logging.NopLogger()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", filepath.Dir(abs))
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: DefaultDebounce,
		logger:   logger.WithComponent("watch").With("path", abs),
	}, nil
}

// SetDebounce changes the settle interval. It must be called before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run calls fn after every settled change to the file until ctx is done,
// then closes the watcher. fn runs on the caller's goroutine.
func (w *Watcher) Run(ctx context.Context, fn func()) error {
	defer func() { _ = w.watcher.Close() }()

	timer := time.NewTimer(0)
	<-timer.C
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("file event", "op", event.Op.String())
			pending = true
			timer.Reset(w.debounce)
		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			w.logger.Info("file changed")
			fn()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}
