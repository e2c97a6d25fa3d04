package utils

import (
	"sort"
)

// LineIndex converts byte offsets within a fixed text into line and column
// positions. Build it once per text; lookups are binary searches over the
// recorded line starts.
type LineIndex struct {
	starts []int
	length int
}

// NewLineIndex builds the index for text.
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return &LineIndex{
		starts: starts,
		length: len(text),
	}
}

// Position returns the 1-based line and column for a byte offset. Columns
// count bytes, matching the offsets the extraction pass produces. Offsets
// outside the text clamp to its ends.
func (ix *LineIndex) Position(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > ix.length {
		offset = ix.length
	}

	// Greatest line start at or before the offset.
	i := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	}) - 1

	return i + 1, offset - ix.starts[i] + 1
}

// Lines returns the number of lines in the indexed text. An empty text has
// one line, a trailing newline opens another.
func (ix *LineIndex) Lines() int {
	return len(ix.starts)
}
