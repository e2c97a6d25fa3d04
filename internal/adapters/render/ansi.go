package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/datetint/datetint/internal/core"
)

// ANSIRenderer paints marks directly into the source text using 24-bit
// color escape sequences
type ANSIRenderer struct{}

// NewANSIRenderer creates a new ANSI renderer
func NewANSIRenderer() *ANSIRenderer {
	return &ANSIRenderer{}
}

// Render writes source to w with every marked span wrapped in color
// escapes. Marks are applied in document order; a mark overlapping an
// earlier one is dropped, so the leftmost span wins.
func (r *ANSIRenderer) Render(w io.Writer, source string, marks []core.Mark) error {
	var sb strings.Builder
	last := 0
	for _, m := range sortMarks(marks) {
		if m.Start < last || m.Start > m.End || m.End > len(source) {
			continue
		}
		sb.WriteString(source[last:m.Start])
		writeColored(&sb, source[m.Start:m.End], m.Background, m.Color)
		last = m.End
	}
	sb.WriteString(source[last:])

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeColored wraps text in background and foreground escapes. A color
// that does not parse as #rrggbb leaves the text unstyled.
func writeColored(sb *strings.Builder, text, background, color string) {
	r, g, b, ok := hexRGB(background)
	if !ok {
		sb.WriteString(text)
		return
	}
	fmt.Fprintf(sb, "\x1b[48;2;%d;%d;%dm", r, g, b)
	if r, g, b, ok := hexRGB(color); ok {
		fmt.Fprintf(sb, "\x1b[38;2;%d;%d;%dm", r, g, b)
	}
	sb.WriteString(text)
	sb.WriteString("\x1b[0m")
}

// hexRGB parses a #rrggbb color value
func hexRGB(s string) (r, g, b uint8, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
