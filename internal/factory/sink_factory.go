package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/datetint/datetint/internal/adapters/stylesheet"
	"github.com/datetint/datetint/internal/config"
	"github.com/datetint/datetint/internal/core"
)

// SinkFactory creates stylesheet sinks based on configuration
type SinkFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewSinkFactory creates a new sink factory
func NewSinkFactory(cfg *config.Config, logger *zap.Logger) *SinkFactory {
	return &SinkFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateSink creates a stylesheet sink based on the configured target
func (f *SinkFactory) CreateSink() (core.StylesheetSink, error) {
	sheet := f.cfg.GetStylesheet()

	switch sheet.Target {
	case "file":
		// Ensure directory exists
		if dir := filepath.Dir(sheet.Output); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create stylesheet directory: %w", err)
			}
		}
		return stylesheet.NewFileSink(sheet.Output, f.logger), nil
	case "stdout":
		return stylesheet.NewWriterSink(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unsupported stylesheet target: %s", sheet.Target)
	}
}
