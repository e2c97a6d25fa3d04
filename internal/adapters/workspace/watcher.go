package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/datetint/datetint/internal/adapters/stylesheet"
	"github.com/datetint/datetint/internal/core"
)

// Watcher drives filename passes: one full pass on demand, then one after
// every burst of rename activity in the workspace. Each pass relists the
// workspace, reruns extraction and classification over all names, and
// installs a freshly built stylesheet.
type Watcher struct {
	service  *core.HighlightService
	lister   core.FileLister
	sink     core.StylesheetSink
	settings core.SettingsSource
	logger   *zap.Logger
	root     string
	debounce time.Duration

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	mu      sync.Mutex
}

// NewWatcher creates a new workspace watcher
func NewWatcher(
	service *core.HighlightService,
	lister core.FileLister,
	sink core.StylesheetSink,
	settings core.SettingsSource,
	logger *zap.Logger,
	root string,
	debounce time.Duration,
) *Watcher {
	return &Watcher{
		service:  service,
		lister:   lister,
		sink:     sink,
		settings: settings,
		logger:   logger,
		root:     root,
		debounce: debounce,
		stopCh:   make(chan struct{}),
	}
}

// Start begins watching the workspace for rename activity
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	w.watcher = watcher

	if err := w.watchRecursive(w.root); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch workspace: %w", err)
	}

	w.logger.Info("Workspace watcher started",
		zap.String("root", w.root),
		zap.Duration("debounce", w.debounce))

	go w.run()

	return nil
}

// Stop stops watching and releases the watcher
func (w *Watcher) Stop() error {
	close(w.stopCh)
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

// Refresh runs one filename pass and installs the resulting stylesheet.
// Passes are serialized: a refresh requested while another runs waits for
// it to finish.
func (w *Watcher) Refresh(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	settings := w.settings.Snapshot()

	paths, err := w.lister.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workspace: %w", err)
	}

	results := w.service.HighlightFilenames(paths, settings)
	css := stylesheet.Build(results)

	if err := w.sink.Install(css); err != nil {
		return fmt.Errorf("failed to install stylesheet: %w", err)
	}

	w.logger.Info("Filename highlights rebuilt",
		zap.Int("files", len(paths)),
		zap.Int("highlighted", len(results)))

	return nil
}

// run collects watcher events and triggers a pass after each burst settles.
func (w *Watcher) run() {
	var pending <-chan time.Time
	var timer *time.Timer

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			// New directories join the watch so renames inside them are
			// seen as well.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watchRecursive(event.Name); err != nil {
						w.logger.Warn("Failed to watch new directory",
							zap.String("path", event.Name),
							zap.Error(err))
					}
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			timer = nil
			if err := w.Refresh(context.Background()); err != nil {
				w.logger.Error("Filename pass failed", zap.Error(err))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("File watcher error", zap.Error(err))

		case <-w.stopCh:
			return
		}
	}
}

// watchRecursive adds root and every directory below it to the watch.
// Excluded folders stay watched; exclusion is applied when listing.
func (w *Watcher) watchRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}
