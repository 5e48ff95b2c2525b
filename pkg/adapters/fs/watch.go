package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces editor write bursts into one regeneration.
const debounceWindow = 50 * time.Millisecond

// Watcher re-runs a callback whenever one of the watched files changes.
// Parent directories are watched rather than the files themselves so that
// editors saving via rename (and our own atomic writes) are still observed.
type Watcher struct {
	paths    []string
	onChange func(ctx context.Context) error
	logger   *slog.Logger
	debounce time.Duration
}

// NewWatcher creates a watcher over the given file paths.
func NewWatcher(paths []string, onChange func(ctx context.Context) error, logger *slog.Logger) *Watcher {
	return &Watcher{
		paths:    paths,
		onChange: onChange,
		logger:   logger,
		debounce: debounceWindow,
	}
}

// Run blocks until ctx is cancelled, firing the callback (debounced) on
// every change to a watched file.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	watched := make(map[string]struct{}, len(w.paths))
	dirs := make(map[string]struct{})
	for _, p := range w.paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := watched[abs]; !ok {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				if w.logger != nil {
					w.logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			if w.logger != nil {
				w.logger.Error("watch error", "error", err)
			}

		case <-timer.C:
			w.fire(ctx)
		}
	}
}

// fire runs the callback in a supervised goroutine so a failing or panicking
// regeneration never kills the watch loop.
func (w *Watcher) fire(ctx context.Context) {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		return w.onChange(ctx)
	}, lifecycle.WithErrorHandler(func(err error) {
		if w.logger != nil {
			w.logger.Error("regeneration failed", "error", err)
		}
	}))
}
