package factory

import (
	"fmt"

	"github.com/datetint/datetint/internal/adapters/render"
	"github.com/datetint/datetint/internal/config"
	"github.com/datetint/datetint/internal/ports"
)

// RendererFactory creates scanner output renderers based on configuration
type RendererFactory struct {
	cfg *config.Config
}

// NewRendererFactory creates a new renderer factory
func NewRendererFactory(cfg *config.Config) *RendererFactory {
	return &RendererFactory{cfg: cfg}
}

// CreateRenderer creates a renderer based on the configured output format
func (f *RendererFactory) CreateRenderer() (ports.Renderer, error) {
	format := f.cfg.GetScanner().Format

	switch format {
	case "ansi":
		return render.NewANSIRenderer(), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "plain":
		return render.NewPlainRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
