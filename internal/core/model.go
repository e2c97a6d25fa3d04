package core

import (
	"github.com/datetint/datetint/internal/dates"
)

// VisibleRange is a slice of a document the host currently displays. Start
// and End are the absolute byte offsets of the slice within the full
// document; Text is the content of the slice.
type VisibleRange struct {
	Start int
	End   int
	Text  string
}

// Mark is one inline decoration instruction for the host. Offsets are
// absolute document coordinates, so marks from different visible ranges can
// be applied without further translation.
type Mark struct {
	Start      int
	End        int
	Background string
	Color      string
	Tooltip    string
}

// FileHighlight is the restyling instruction for one file whose name
// contains a date.
type FileHighlight struct {
	Path       string
	Matched    string
	Background string
	Color      string
	Label      string
}

// Settings is the effective configuration snapshot a single pass runs
// against. Passes receive a snapshot taken once, so a settings save never
// leaves one pass straddling old and new values.
type Settings struct {
	Palette            dates.Palette
	HighlightContent   bool
	HighlightFilenames bool
}
