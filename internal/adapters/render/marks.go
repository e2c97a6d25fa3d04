package render

import (
	"sort"

	"github.com/datetint/datetint/internal/core"
)

// sortMarks returns the marks in document order without mutating the input.
// Marks with equal starts keep their relative order.
func sortMarks(marks []core.Mark) []core.Mark {
	sorted := make([]core.Mark, len(marks))
	copy(sorted, marks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	return sorted
}
