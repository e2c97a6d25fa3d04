package render

import (
	"encoding/json"
	"io"

	"github.com/datetint/datetint/internal/core"
	"github.com/datetint/datetint/internal/utils"
)

// markRecord is the wire form of one mark, with the start offset resolved
// to a line and column for host tooling
type markRecord struct {
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Text       string `json:"text"`
	Background string `json:"background"`
	Color      string `json:"color"`
	Tooltip    string `json:"tooltip,omitempty"`
}

// JSONRenderer emits the mark instructions as a JSON array
type JSONRenderer struct{}

// NewJSONRenderer creates a new JSON renderer
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render writes the marks over source to w as indented JSON, in document
// order
func (r *JSONRenderer) Render(w io.Writer, source string, marks []core.Mark) error {
	ix := utils.NewLineIndex(source)

	records := make([]markRecord, 0, len(marks))
	for _, m := range sortMarks(marks) {
		if m.Start < 0 || m.Start > m.End || m.End > len(source) {
			continue
		}
		line, col := ix.Position(m.Start)
		records = append(records, markRecord{
			Start:      m.Start,
			End:        m.End,
			Line:       line,
			Column:     col,
			Text:       source[m.Start:m.End],
			Background: m.Background,
			Color:      m.Color,
			Tooltip:    m.Tooltip,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
