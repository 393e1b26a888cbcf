package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

type Event struct {
	Path      string    `json:"path"`
	Operation string    `json:"operation"`
	At        time.Time `json:"at"`
}

// FileWatcher reports writes, creations and renames of a single file. The
// parent directory is watched so editors that replace the file are seen.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan Event
	logger  zerolog.Logger
}

func NewFileWatcher(ctx context.Context, path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	fw := &FileWatcher{
		watcher: watcher,
		path:    abs,
		events:  make(chan Event, 100),
		logger:  zerolog.Ctx(ctx).With().Str("path", abs).Logger(),
	}
	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.events)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			select {
			case fw.events <- Event{Path: event.Name, Operation: event.Op.String(), At: time.Now()}:
			default:
				fw.logger.Warn().Str("op", event.Op.String()).Msg("dropping file event, consumer too slow")
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Error().Err(err).Msg("file watch error")
		}
	}
}

func (fw *FileWatcher) Events() <-chan Event {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
