package dates

import (
	"fmt"
	"time"
)

// Category is the age bucket a parsed date falls into.
type Category int

const (
	Recent Category = iota
	Intermediate
	Old
)

func (c Category) String() string {
	switch c {
	case Recent:
		return "recent"
	case Intermediate:
		return "intermediate"
	default:
		return "old"
	}
}

// Palette carries the configured colors and age thresholds used to resolve
// the color pair for a date. Thresholds are whole days; the configuration
// layer guarantees IntermediateDays > RecentDays >= 0.
type Palette struct {
	RecentColor       string
	IntermediateColor string
	OldColor          string
	TextColor         string
	RecentDays        int
	IntermediateDays  int
}

// ColorPair is the resolved background and text color for one date.
type ColorPair struct {
	Background string
	Text       string
}

// Parse parses s strictly against the supported formats in scan order and
// returns the first calendar-valid result. A string that matches a format's
// shape but names no real day, such as month 13 or February 30, is rejected
// by that format and falls through to the next.
func Parse(s string) (time.Time, bool) {
	for _, p := range patterns {
		if t, err := time.Parse(p.layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysSince returns the whole-day age of s relative to now, truncated toward
// zero: a difference of 36 hours is one day. Future dates yield negative
// values. The difference is taken in epoch seconds; a time.Duration would
// saturate a few hundred years out. The second result is false when s is not
// a valid date in any supported format.
func DaysSince(s string, now time.Time) (int, bool) {
	t, ok := Parse(s)
	if !ok {
		return 0, false
	}
	return int((now.Unix() - t.Unix()) / 86400), true
}

// Categorize maps a whole-day age onto a bucket. Both thresholds are
// inclusive upper bounds and are checked recent-first, so negative ages
// (future dates) land in Recent.
func Categorize(daysSince int, p Palette) Category {
	switch {
	case daysSince <= p.RecentDays:
		return Recent
	case daysSince <= p.IntermediateDays:
		return Intermediate
	default:
		return Old
	}
}

// Classify resolves the color pair for s at the instant now. Strings that do
// not parse as a real date in any supported format take the Old colors
// rather than failing the pass.
func Classify(s string, p Palette, now time.Time) ColorPair {
	days, ok := DaysSince(s, now)
	if !ok {
		return ColorPair{Background: p.OldColor, Text: p.TextColor}
	}
	var background string
	switch Categorize(days, p) {
	case Recent:
		background = p.RecentColor
	case Intermediate:
		background = p.IntermediateColor
	default:
		background = p.OldColor
	}
	return ColorPair{Background: background, Text: p.TextColor}
}

// RelativeLabel renders the age of s at the instant now as a human-readable
// phrase: "Today", "Yesterday", "Tomorrow", "N days ago" or "In N days".
// Strings that do not parse produce an empty label.
func RelativeLabel(s string, now time.Time) string {
	days, ok := DaysSince(s, now)
	if !ok {
		return ""
	}
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	case -1:
		return "Tomorrow"
	}
	if days > 0 {
		return fmt.Sprintf("%d days ago", days)
	}
	return fmt.Sprintf("In %d days", -days)
}
