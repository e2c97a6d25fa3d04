package dates

import "regexp"

// Pattern pairs a shape-matching expression with the strict layout used to
// validate candidates of that shape.
type Pattern struct {
	Name   string
	re     *regexp.Regexp
	layout string
}

// The supported date shapes, in the order they are scanned and parsed.
// Matching is shape-only; calendar validity is checked later by the parser.
// There are no boundary anchors, so a date embedded in a longer digit run
// still matches.
var patterns = []Pattern{
	{Name: "YYYY-MM-DD", re: regexp.MustCompile(`\d{4}-\d{2}-\d{2}`), layout: "2006-01-02"},
	{Name: "MM/DD/YYYY", re: regexp.MustCompile(`\d{2}/\d{2}/\d{4}`), layout: "01/02/2006"},
	{Name: "DD-MM-YYYY", re: regexp.MustCompile(`\d{2}-\d{2}-\d{4}`), layout: "02-01-2006"},
	{Name: "YYYY.MM.DD", re: regexp.MustCompile(`\d{4}\.\d{2}\.\d{2}`), layout: "2006.01.02"},
}

// Formats returns the names of the supported date formats in scan order.
func Formats() []string {
	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.Name
	}
	return names
}
