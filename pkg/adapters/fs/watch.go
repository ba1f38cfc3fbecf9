package fs

import (
	"context"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/lsd/pkg/core"
)

// DebounceDelay coalesces the burst of events an editor produces on save.
const DebounceDelay = 50 * time.Millisecond

// Watch emits an event for every Markdown file under pages/ and journals/
// that matches pattern (a doublestar glob relative to the graph root, e.g.
// "pages/**/*.md"). An empty pattern matches every Markdown file.
// The returned channel is closed once ctx is cancelled.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	added := 0
	for _, dir := range []string{core.PagesDir, core.JournalsDir} {
		n, err := s.recursiveAdd(watcher, filepath.Join(s.Path, dir))
		if err != nil {
			_ = watcher.Close()
			return nil, err
		}
		added += n
	}
	if added == 0 {
		_ = watcher.Close()
		return nil, fmt.Errorf("nothing to watch in %s: no %s or %s directory", s.Path, core.PagesDir, core.JournalsDir)
	}

	events := make(chan core.Event)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatcherActive(false)
		defer watcher.Close()

		d := newDebouncer(DebounceDelay)
		err := s.watchLoop(ctx, watcher, pattern, d, events)
		d.stopAndWait(5 * time.Second)
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		s.handleWatchError(fmt.Errorf("watch loop: %w", err))
	}))

	return events, nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, d *debouncer, events chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}

			// New sub-directories are watched too.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if _, err := s.recursiveAdd(watcher, event.Name); err != nil {
						s.handleWatchError(err)
					}
					continue
				}
			}

			e, ok := s.mapEvent(event, pattern)
			if !ok {
				continue
			}
			s.config.Logger.Debug("event received", "type", e.Type, "path", e.Path)

			d.add(e, func(e core.Event) {
				select {
				case events <- e:
				case <-ctx.Done():
				}
			})

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			s.handleWatchError(wErr)
		}
	}
}

// mapEvent filters a raw fsnotify event and converts it into a core.Event.
func (s *Store) mapEvent(event fsnotify.Event, pattern string) (core.Event, bool) {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, TempFilePrefix) || strings.HasPrefix(base, ".") {
		return core.Event{}, false
	}
	if !strings.EqualFold(filepath.Ext(base), core.MarkdownExt) {
		return core.Event{}, false
	}

	if pattern != "" {
		rel, err := filepath.Rel(s.Path, event.Name)
		if err != nil {
			return core.Event{}, false
		}
		if ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel)); !ok {
			return core.Event{}, false
		}
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{Type: eType, Path: event.Name, Timestamp: time.Now().Unix()}, true
}

// recursiveAdd watches dir and its non-hidden sub-directories.
// A missing dir is not an error; the number of watched directories is returned.
func (s *Store) recursiveAdd(watcher *fsnotify.Watcher, dir string) (int, error) {
	added := 0
	err := filepath.WalkDir(dir, func(path string, entry iofs.DirEntry, err error) error {
		if err != nil {
			if path == dir && os.IsNotExist(err) {
				return iofs.SkipAll
			}
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(entry.Name(), ".") {
			return iofs.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		added++
		return nil
	})
	return added, err
}

func (s *Store) handleWatchError(err error) {
	s.config.Logger.Error("watcher error", "error", err)
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
	}
}

// debouncer delays an event until no newer event for the same path arrived
// within delay.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, timers: make(map[string]*time.Timer)}
}

func (d *debouncer) add(e core.Event, fn func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if prev, ok := d.timers[e.Path]; ok && prev.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.timers[e.Path] == timer {
			delete(d.timers, e.Path)
		}
		d.mu.Unlock()

		fn(e)
	})
	d.timers[e.Path] = timer
}

// stopAndWait drops pending events and waits for in-flight callbacks.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, timer := range d.timers {
		if timer.Stop() {
			d.wg.Done()
		}
		delete(d.timers, path)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
