// Package watcher watches the application directories and classifies
// newly installed applications as they appear.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/blackwell-systems/brewscan/internal/apps"
	"github.com/blackwell-systems/brewscan/internal/match"
)

// Event is one observed application change. For additions Record holds
// the classification against the catalog captured at watcher start;
// for removals only App is populated.
type Event struct {
	App     match.App
	Record  match.Record
	Removed bool
}

// Watcher monitors a set of application roots with fsnotify. The
// catalog is read-only for the watcher's lifetime; re-run the scan to
// pick up catalog changes.
type Watcher struct {
	cat   *match.Catalog
	roots []apps.Root
	fsw   *fsnotify.Watcher
}

// New creates a watcher over the given roots. Roots whose directory
// does not exist are skipped; watching fails only if none can be
// watched.
func New(roots []apps.Root, cat *match.Catalog) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fs watcher: %w", err)
	}

	var watched []apps.Root
	for _, root := range roots {
		if err := fsw.Add(root.Path); err != nil {
			continue
		}
		watched = append(watched, root)
	}

	if len(watched) == 0 {
		fsw.Close()
		return nil, fmt.Errorf("no watchable application directories")
	}

	return &Watcher{cat: cat, roots: watched, fsw: fsw}, nil
}

// Roots returns the directories actually being watched.
func (w *Watcher) Roots() []apps.Root {
	return w.roots
}

// Run delivers events to handle until the context is cancelled.
// Cancellation is the normal way to stop and returns nil.
func (w *Watcher) Run(ctx context.Context, handle func(Event)) error {
	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if e, ok := w.translate(ev); ok {
				handle(e)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// translate maps a raw fsnotify event to an application event, or
// reports false for entries that are not applications (temp files,
// unrelated suffixes).
func (w *Watcher) translate(ev fsnotify.Event) (Event, bool) {
	dir := filepath.Dir(ev.Name)
	base := filepath.Base(ev.Name)

	for _, root := range w.roots {
		if root.Path != dir || !strings.HasSuffix(base, root.Suffix) {
			continue
		}

		app := match.App{
			Name:   strings.TrimSuffix(base, root.Suffix),
			Path:   ev.Name,
			Origin: root.Origin,
		}

		switch {
		case ev.Op&fsnotify.Create != 0:
			return Event{App: app, Record: match.Classify(app, w.cat)}, true
		case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
			return Event{App: app, Removed: true}, true
		}
	}

	return Event{}, false
}
