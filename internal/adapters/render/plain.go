package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/datetint/datetint/internal/core"
	"github.com/datetint/datetint/internal/utils"
)

// PlainRenderer lists one mark per line for grepping and shell pipelines
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// Render writes one tab-separated line per mark: position, matched text,
// background color, and the relative-age label when present
func (r *PlainRenderer) Render(w io.Writer, source string, marks []core.Mark) error {
	ix := utils.NewLineIndex(source)

	var sb strings.Builder
	for _, m := range sortMarks(marks) {
		if m.Start < 0 || m.Start > m.End || m.End > len(source) {
			continue
		}
		line, col := ix.Position(m.Start)
		fmt.Fprintf(&sb, "%d:%d\t%s\t%s", line, col, source[m.Start:m.End], m.Background)
		if m.Tooltip != "" {
			fmt.Fprintf(&sb, "\t%s", m.Tooltip)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
