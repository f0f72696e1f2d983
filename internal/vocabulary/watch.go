package vocabulary

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wgomg/rudefinder/internal/utils"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads a Store whenever its vocabulary file changes on disk.
type Watcher struct {
	logger    *utils.Logger
	store     *Store
	path      string
	separator string
	debounce  time.Duration
	onReload  func(words []string)
}

func NewWatcher(
	logger *utils.Logger,
	store *Store,
	path string,
	separator string,
	debounce time.Duration,
	onReload func(words []string),
) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &Watcher{
		logger:    logger,
		store:     store,
		path:      path,
		separator: separator,
		debounce:  debounce,
		onReload:  onReload,
	}
}

// Run blocks until ctx is cancelled. The parent directory is watched rather
// than the file so that editors which save by rename are still noticed.
func (w *Watcher) Run(ctx context.Context) error {
	if w.path == "" {
		return fmt.Errorf("no vocabulary path to watch")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	target := filepath.Clean(w.path)
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	w.logger.Info(nil, "Watching vocabulary file %s", target)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}

			w.logger.Debug(nil, "Vocabulary event %s", ev)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(nil, "Vocabulary watcher error: %v", err)

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	words, source, err := Load(w.path, w.separator, w.logger)
	if err != nil {
		// keep serving the previous list
		w.logger.Error(nil, "Failed to reload vocabulary: %v", err)
		return
	}

	w.store.Replace(words, source)
	w.logger.Info(nil, "Reloaded %d words from %s", len(words), source)

	if w.onReload != nil {
		w.onReload(words)
	}
}
