package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"centerball/internal/app/bus"
	"centerball/internal/app/errors"
	"centerball/internal/config"
	"centerball/internal/config/logger"
)

// Loader reads a configuration file
type Loader func(path string) (*config.Config, error)

// Watcher reloads the theme when the configuration file changes on disk
type Watcher interface {
	Start(ctx context.Context) error
	Close()
}

type watcher struct {
	cfg       *config.Config
	path      string
	bus       bus.Bus
	load      Loader
	fsWatcher *fsnotify.Watcher
	filter    *filter
	log       logger.Logger
	mu        sync.Mutex
	started   bool
	closed    bool
}

// NewWatcher creates a Watcher for the file cfg was loaded from
func NewWatcher(cfg *config.Config, b bus.Bus, log logger.Logger) (Watcher, error) {
	return newWatcher(cfg, b, config.LoadFrom, log)
}

func newWatcher(cfg *config.Config, b bus.Bus, load Loader, log logger.Logger) (Watcher, error) {
	path := cfg.Path
	if path == "" {
		path = config.ConfigFile
	}

	f, err := newFilter(path, cfg.Watch.Include)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToStartWatch, err)
	}

	return &watcher{
		cfg:    cfg,
		path:   path,
		bus:    b,
		load:   load,
		filter: f,
		log:    log.WithComponent("WATCHER"),
	}, nil
}

// Start watches the directory holding the config file, editors often replace the file instead of writing it
func (w *watcher) Start(ctx context.Context) error {
	if !w.cfg.Watch.Enabled {
		w.log.Debug().Msg("Config watching disabled")
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started || w.closed {
		return nil
	}

	dir, err := filepath.Abs(filepath.Dir(w.path))
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToStartWatch, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToStartWatch, err)
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("%w: %w", errors.ErrFailedToStartWatch, err)
	}

	w.fsWatcher = fsw
	w.started = true

	go w.processEvents(ctx, fsw)

	w.log.Info().Msgf("Watching %s for theme changes", dir)

	return nil
}

// Close stops watching and cancels any pending reload
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}
}

func (w *watcher) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.closed
}

// processEvents collects matching events until the directory has been quiet for the debounce period
func (w *watcher) processEvents(ctx context.Context, fsw *fsnotify.Watcher) {
	changed := make(map[string]struct{})
	quiet := time.NewTimer(w.cfg.Watch.Debounce)
	quiet.Stop()

	defer quiet.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Close()
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			if !isRelevantEvent(event) || !w.filter.accepts(event.Name) {
				continue
			}

			changed[filepath.Base(event.Name)] = struct{}{}
			quiet.Reset(w.cfg.Watch.Debounce)

		case <-quiet.C:
			if len(changed) == 0 || w.isClosed() {
				continue
			}

			files := make([]string, 0, len(changed))
			for name := range changed {
				files = append(files, name)
			}

			clear(changed)
			sort.Strings(files)
			w.reload(files)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// reload re-reads the file and publishes its theme, an invalid file keeps the current theme
func (w *watcher) reload(files []string) {
	w.log.Debug().Msgf("Config changed: %v", files)

	cfg, err := w.load(w.path)
	if err != nil {
		w.log.Warn().Err(err).Msgf("Ignoring change to %s", w.path)
		return
	}

	w.bus.Publish(bus.Message{
		Type:     bus.EventThemeReloaded,
		Data:     bus.ThemeReloaded{Path: w.path, Theme: cfg.Theme},
		Critical: true,
	})
}

func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename)
}
