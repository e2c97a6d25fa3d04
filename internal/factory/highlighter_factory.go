package factory

import (
	"go.uber.org/zap"

	"github.com/datetint/datetint/internal/adapters/workspace"
	"github.com/datetint/datetint/internal/config"
	"github.com/datetint/datetint/internal/core"
	"github.com/datetint/datetint/internal/ports"
)

// HighlighterFactory creates the filename highlighter that keeps host
// styling in sync with the workspace
type HighlighterFactory struct {
	cfg      *config.Config
	logger   *zap.Logger
	service  *core.HighlightService
	lister   core.FileLister
	sink     core.StylesheetSink
	settings core.SettingsSource
}

// NewHighlighterFactory creates a new highlighter factory
func NewHighlighterFactory(
	cfg *config.Config,
	logger *zap.Logger,
	service *core.HighlightService,
	lister core.FileLister,
	sink core.StylesheetSink,
	settings core.SettingsSource,
) *HighlighterFactory {
	return &HighlighterFactory{
		cfg:      cfg,
		logger:   logger,
		service:  service,
		lister:   lister,
		sink:     sink,
		settings: settings,
	}
}

// CreateFileHighlighter creates the workspace watcher from the configured
// root and debounce window
func (f *HighlighterFactory) CreateFileHighlighter() (ports.FileHighlighter, error) {
	ws := f.cfg.GetWorkspace()
	watch := f.cfg.GetWatch()

	return workspace.NewWatcher(
		f.service,
		f.lister,
		f.sink,
		f.settings,
		f.logger,
		ws.Root,
		watch.Debounce,
	), nil
}
