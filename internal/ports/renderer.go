package ports

import (
	"io"

	"github.com/datetint/datetint/internal/core"
)

// Renderer defines the interface for presenting content-pass marks
type Renderer interface {
	// Render writes the marks over source to w
	Render(w io.Writer, source string, marks []core.Mark) error
}
