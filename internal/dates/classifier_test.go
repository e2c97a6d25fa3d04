package dates

import (
	"testing"
	"time"
)

func testPalette() Palette {
	return Palette{
		RecentColor:       "#a4e7c3",
		IntermediateColor: "#e7dba4",
		OldColor:          "#e7a4a4",
		TextColor:         "#000000",
		RecentDays:        14,
		IntermediateDays:  30,
	}
}

func TestParseAllFormats(t *testing.T) {
	tests := []struct {
		input string
		year  int
		month time.Month
		day   int
	}{
		{"2024-03-30", 2024, time.March, 30},
		{"03/30/2024", 2024, time.March, 30},
		{"30-03-2024", 2024, time.March, 30},
		{"2024.03.30", 2024, time.March, 30},
		{"12/25/2023", 2023, time.December, 25},
		{"01-02-2024", 2024, time.February, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, ok := Parse(tt.input)
			if !ok {
				t.Fatalf("Expected %q to parse", tt.input)
			}
			y, m, d := parsed.Date()
			if y != tt.year || m != tt.month || d != tt.day {
				t.Errorf("Expected %d-%02d-%02d, got %d-%02d-%02d", tt.year, tt.month, tt.day, y, m, d)
			}
		})
	}
}

func TestParseRejectsImpossibleDates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"February 30th", "2024-02-30"},
		{"month 13", "2024-13-01"},
		{"day zero", "2024-01-00"},
		{"month 45 slashed", "45/10/2024"},
		{"not a date at all", "hello"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Parse(tt.input); ok {
				t.Errorf("Expected %q to be rejected", tt.input)
			}
		})
	}
}

func TestDaysSinceWholeDays(t *testing.T) {
	now := time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		days  int
	}{
		{"same day", "2024-03-30", 0},
		{"yesterday", "2024-03-29", 1},
		{"tomorrow", "2024-03-31", -1},
		{"three weeks back", "2024-03-09", 21},
		{"three days ahead", "2024-04-02", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := DaysSince(tt.input, now)
			if !ok {
				t.Fatalf("Expected %q to parse", tt.input)
			}
			if days != tt.days {
				t.Errorf("Expected %d days, got %d", tt.days, days)
			}
		})
	}
}

func TestDaysSinceTruncatesTowardZero(t *testing.T) {
	// Parsed dates sit at midnight, so a mid-day clock leaves fractional
	// ages. Fractions drop toward zero in both directions.
	noon := time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		days  int
	}{
		{"36 hours ago is one day", "2024-03-29", 1},
		{"12 hours ago is zero days", "2024-03-30", 0},
		{"12 hours ahead is zero days", "2024-03-31", 0},
		{"36 hours ahead is minus one day", "2024-04-01", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := DaysSince(tt.input, noon)
			if !ok {
				t.Fatalf("Expected %q to parse", tt.input)
			}
			if days != tt.days {
				t.Errorf("Expected %d days, got %d", tt.days, days)
			}
		})
	}
}

func TestDaysSinceDistantDates(t *testing.T) {
	// Ages in the hundreds of thousands of days exceed what a time.Duration
	// can hold; the day count must stay exact anyway.
	now := time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		days  int
	}{
		{"three centuries back", "1700-01-01", 118427},
		{"seven centuries ahead", "2724-03-30", -255669},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := DaysSince(tt.input, now)
			if !ok {
				t.Fatalf("Expected %q to parse", tt.input)
			}
			if days != tt.days {
				t.Errorf("Expected %d days, got %d", tt.days, days)
			}
		})
	}
}

func TestDaysSinceInvalidInput(t *testing.T) {
	now := time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)

	if _, ok := DaysSince("2024-02-30", now); ok {
		t.Error("Expected impossible date to report not-ok")
	}
}

func TestCategorizeInclusiveBounds(t *testing.T) {
	p := testPalette()

	tests := []struct {
		days     int
		expected Category
	}{
		{0, Recent},
		{7, Recent},
		{14, Recent}, // boundary day still counts as recent
		{15, Intermediate},
		{30, Intermediate}, // boundary day still counts as intermediate
		{31, Old},
		{400, Old},
		{-1, Recent}, // future dates are at most zero days old
		{-90, Recent},
	}

	for _, tt := range tests {
		if got := Categorize(tt.days, p); got != tt.expected {
			t.Errorf("Categorize(%d) = %v, want %v", tt.days, got, tt.expected)
		}
	}
}

func TestCategorizeInvertedThresholds(t *testing.T) {
	// Misordered thresholds still bucket deterministically: the recent
	// check runs first, and ages beyond both bounds fall through to old.
	p := testPalette()
	p.RecentDays = 30
	p.IntermediateDays = 10

	if got := Categorize(20, p); got != Recent {
		t.Errorf("Categorize(20) = %v, want %v", got, Recent)
	}
	if got := Categorize(40, p); got != Old {
		t.Errorf("Categorize(40) = %v, want %v", got, Old)
	}
}

func TestClassifyAgeBuckets(t *testing.T) {
	p := testPalette()
	now := time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      string
		background string
	}{
		{"one day old is recent", "2024-03-29", p.RecentColor},
		{"twenty days old is intermediate", "2024-03-10", p.IntermediateColor},
		{"two months old is old", "2024-02-01", p.OldColor},
		{"future date is recent", "2024-04-02", p.RecentColor},
		{"impossible date takes old colors", "2024-02-30", p.OldColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := Classify(tt.input, p, now)
			if pair.Background != tt.background {
				t.Errorf("Expected background %s, got %s", tt.background, pair.Background)
			}
			if pair.Text != p.TextColor {
				t.Errorf("Expected text color %s, got %s", p.TextColor, pair.Text)
			}
		})
	}
}

func TestRelativeLabel(t *testing.T) {
	now := time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"today", "2024-03-30", "Today"},
		{"yesterday", "2024-03-29", "Yesterday"},
		{"tomorrow", "2024-03-31", "Tomorrow"},
		{"five days back", "2024-03-25", "5 days ago"},
		{"five days ahead", "2024-04-04", "In 5 days"},
		{"slashed format", "03/25/2024", "5 days ago"},
		{"impossible date", "2024-02-30", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeLabel(tt.input, now); got != tt.expected {
				t.Errorf("Expected label %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{Recent, "recent"},
		{Intermediate, "intermediate"},
		{Old, "old"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}
