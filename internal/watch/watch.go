// Package watch streams entry create/remove events for one branch child
// root, so front-ends can refresh listings without polling.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"stagehand/internal/logging"
)

// Op classifies what happened to a directory entry.
type Op string

const (
	OpAdded   Op = "added"
	OpRemoved Op = "removed"
)

// Event reports one entry appearing or disappearing under the watched
// directory.
type Event struct {
	Op   Op
	Name string
	Path string
}

// Watcher delivers events for one directory until its context ends.
type Watcher struct {
	dir     string
	logger  *slog.Logger
	watcher *fsnotify.Watcher
	events  chan Event
}

// New starts watching dir. A nil logger silences error reporting.
func New(dir string, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	w := &Watcher{
		dir:     dir,
		logger:  logging.NewNop(),
		watcher: fw,
		events:  make(chan Event, 16),
	}
	if logger != nil {
		w.logger = logger
	}
	return w, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string { return w.dir }

// Events returns the event stream. The channel closes when Run returns.
func (w *Watcher) Events() <-chan Event { return w.events }

// Run forwards filesystem events until ctx is done. Transient watcher
// errors are logged and the stream continues.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			op, ok := translate(event)
			if !ok {
				continue
			}
			out := Event{Op: op, Name: filepath.Base(event.Name), Path: event.Name}
			select {
			case w.events <- out:
			case <-ctx.Done():
				return ctx.Err()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", logging.String(logging.FieldPath, w.dir), logging.Error(err))
		}
	}
}

func translate(event fsnotify.Event) (Op, bool) {
	switch {
	case event.Has(fsnotify.Create):
		return OpAdded, true
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return OpRemoved, true
	default:
		return "", false
	}
}
