package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/datetint/datetint/internal/adapters/workspace"
	"github.com/datetint/datetint/internal/config"
	"github.com/datetint/datetint/internal/core"
	"github.com/datetint/datetint/internal/factory"
	"github.com/datetint/datetint/internal/logging"
	"github.com/datetint/datetint/internal/ports"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register highlight service on the system clock
	if err := container.Provide(func(logger *zap.Logger) *core.HighlightService {
		return core.NewHighlightService(logger, nil)
	}); err != nil {
		return nil, err
	}

	// Register settings source
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *factory.SettingsFactory {
		if !cfg.ThresholdsValid() {
			logger.Warn("Configured age thresholds are misordered, falling back to defaults",
				zap.Int("recent_days", cfg.GetInt("thresholds.recent_days")),
				zap.Int("intermediate_days", cfg.GetInt("thresholds.intermediate_days")))
		}
		return factory.NewSettingsFactory(cfg)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.SettingsFactory) core.SettingsSource {
		return f
	}); err != nil {
		return nil, err
	}

	// Register workspace lister
	if err := container.Provide(workspace.NewWalker); err != nil {
		return nil, err
	}
	if err := container.Provide(func(w *workspace.Walker) core.FileLister {
		return w
	}); err != nil {
		return nil, err
	}

	// Register stylesheet sink
	if err := container.Provide(factory.NewSinkFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.SinkFactory) (core.StylesheetSink, error) {
		return f.CreateSink()
	}); err != nil {
		return nil, err
	}

	// Register filename highlighter
	if err := container.Provide(factory.NewHighlighterFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.HighlighterFactory) (ports.FileHighlighter, error) {
		return f.CreateFileHighlighter()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
