package stylesheet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/datetint/datetint/internal/core"
)

// Build renders the complete stylesheet for one filename pass: one rule per
// highlighted file, selecting on its path attribute. Rules are emitted in
// sorted path order, so identical pass results always produce an identical
// sheet. An empty result produces an empty sheet, which clears all filename
// styling when installed.
func Build(results map[string]core.FileHighlight) string {
	if len(results) == 0 {
		return ""
	}

	paths := make([]string, 0, len(results))
	for path := range results {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var sb strings.Builder
	for _, path := range paths {
		h := results[path]
		fmt.Fprintf(&sb, "[data-path=\"%s\"] { background-color: %s; color: %s; }\n",
			escapePath(path), h.Background, h.Color)
	}

	return sb.String()
}

// escapePath makes a path safe inside a double-quoted CSS attribute
// selector.
func escapePath(path string) string {
	path = strings.ReplaceAll(path, `\`, `\\`)
	return strings.ReplaceAll(path, `"`, `\"`)
}
