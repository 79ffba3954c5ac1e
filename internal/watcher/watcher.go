// Package watcher reports debounced changes to image files in a folder.
package watcher

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/pubsub"
)

// EventType distinguishes folder changes from watcher failures.
type EventType int

const (
	FolderChanged EventType = iota
	WatcherError
)

// WatcherEvent is published on the watcher's broker.
type WatcherEvent struct {
	Type  EventType
	Dir   string
	Error error
}

// Watcher monitors one folder and publishes a FolderChanged event after a
// burst of relevant file events settles.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	dir        string
	extensions []string
	debounce   time.Duration
	broker     *pubsub.Broker[WatcherEvent]
	done       chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	Dir string
	// Extensions limits events to matching files, e.g. ".png". Empty matches all.
	Extensions  []string
	DebounceDur time.Duration
}

// DefaultConfig watches dir for the common image extensions.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:         dir,
		Extensions:  []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp"},
		DebounceDur: 300 * time.Millisecond,
	}
}

// New creates a folder watcher. Call Start to begin watching.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	exts := make([]string, len(cfg.Extensions))
	for i, e := range cfg.Extensions {
		exts[i] = normalizeExt(e)
	}
	return &Watcher{
		fsWatcher:  fsw,
		dir:        cfg.Dir,
		extensions: exts,
		debounce:   cfg.DebounceDur,
		broker:     pubsub.NewBroker[WatcherEvent](),
		done:       make(chan struct{}),
	}, nil
}

// Broker delivers the watcher's events.
func (w *Watcher) Broker() *pubsub.Broker[WatcherEvent] { return w.broker }

// Start begins watching the folder.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", w.dir, err)
	}
	log.Debug(log.CatWatcher, "watching", "dir", w.dir, "debounce", w.debounce)
	go w.loop()
	return nil
}

// Stop terminates the watcher and closes its broker.
func (w *Watcher) Stop() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	w.broker.Close()
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			log.Debug(log.CatWatcher, "folder changed", "dir", w.dir)
			w.broker.Publish(pubsub.ChangedEvent, WatcherEvent{Type: FolderChanged, Dir: w.dir})

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "watch failed", err, "dir", w.dir)
			w.broker.Publish(pubsub.ChangedEvent, WatcherEvent{Type: WatcherError, Dir: w.dir, Error: err})

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isRelevantEvent keeps creates, writes, removes and renames of files with
// a watched extension. Chmod alone never triggers a rescan.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return Matches(event.Name, w.extensions)
}

// Matches reports whether path has one of exts, compared case-insensitively.
// An empty list matches every path.
func Matches(path string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	return slices.Contains(exts, normalizeExt(filepath.Ext(path)))
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
