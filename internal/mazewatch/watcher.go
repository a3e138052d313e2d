// Package mazewatch reloads a maze file when it changes on disk.
package mazewatch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/sjiamnocna/fancysokoban/internal/gameplay"
)

const DefaultDelay = 100 * time.Millisecond

// Watcher watches the directory holding a maze file, since editors often
// replace files instead of writing them in place.
type Watcher struct {
	path  string
	delay time.Duration
	log   zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

func New(path string, log zerolog.Logger) *Watcher {
	return &Watcher{
		path:  filepath.Clean(path),
		delay: DefaultDelay,
		log:   log.With().Str("component", "mazewatch").Str("maze", path).Logger(),
	}
}

// Run blocks until ctx is done. Every burst of writes to the maze file ends
// in one reparse; valid mazes are passed to onLoad from a timer goroutine,
// invalid ones are logged and skipped.
func (w *Watcher) Run(ctx context.Context, onLoad func(*gameplay.Game)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.log.Info().Msg("watching maze file")

	for {
		select {
		case <-ctx.Done():
			w.stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceLoad(ctx, onLoad)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) debounceLoad(ctx context.Context, onLoad func(*gameplay.Game)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, func() {
		if ctx.Err() != nil {
			return
		}
		game, err := gameplay.LoadGame(w.path)
		if err != nil {
			w.log.Warn().Err(err).Msg("ignoring invalid maze")
			return
		}
		w.log.Info().Msg("maze changed")
		onLoad(game)
	})
}

func (w *Watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}
