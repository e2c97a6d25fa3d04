package core

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/datetint/datetint/internal/dates"
)

// HighlightService is the core service for date highlighting. It runs
// extraction and classification passes over visible content and filename
// listings, against a single settings and clock snapshot per pass.
type HighlightService struct {
	logger *zap.Logger
	clock  func() time.Time
}

// NewHighlightService creates a new highlight service. A nil clock means
// the system clock; tests inject a fixed one for reproducible ages.
func NewHighlightService(logger *zap.Logger, clock func() time.Time) *HighlightService {
	if clock == nil {
		clock = time.Now
	}
	return &HighlightService{
		logger: logger,
		clock:  clock,
	}
}

// HighlightVisible runs one content pass over the currently visible ranges
// and returns the decoration marks for the host to apply. The returned
// offsets are absolute document coordinates. A disabled content toggle
// yields no marks without scanning.
func (s *HighlightService) HighlightVisible(ranges []VisibleRange, settings Settings) []Mark {
	if !settings.HighlightContent {
		return nil
	}

	// One clock reading per pass, so every date in the pass ages against
	// the same instant.
	now := s.clock()
	passID := uuid.New().String()
	startTime := time.Now()

	var marks []Mark
	for _, r := range ranges {
		for _, m := range dates.Find(r.Text) {
			pair := dates.Classify(m.Text, settings.Palette, now)
			marks = append(marks, Mark{
				Start:      r.Start + m.Start,
				End:        r.Start + m.End,
				Background: pair.Background,
				Color:      pair.Text,
				Tooltip:    dates.RelativeLabel(m.Text, now),
			})
		}
	}

	s.logger.Debug("Content pass complete",
		zap.String("pass_id", passID),
		zap.Int("ranges", len(ranges)),
		zap.Int("marks", len(marks)),
		zap.Duration("duration", time.Since(startTime)))

	return marks
}

// HighlightFilenames runs one filename pass over the given file identifiers
// and returns the restyling instruction for each name that contains a date.
// Only the first date in a name counts; later ones are ignored. A disabled
// filename toggle yields no results without scanning.
func (s *HighlightService) HighlightFilenames(paths []string, settings Settings) map[string]FileHighlight {
	if !settings.HighlightFilenames {
		return nil
	}

	now := s.clock()
	passID := uuid.New().String()
	startTime := time.Now()

	results := make(map[string]FileHighlight)
	for _, path := range paths {
		matches := dates.Find(path)
		if len(matches) == 0 {
			continue
		}

		first := matches[0]
		pair := dates.Classify(first.Text, settings.Palette, now)
		results[path] = FileHighlight{
			Path:       path,
			Matched:    first.Text,
			Background: pair.Background,
			Color:      pair.Text,
			Label:      dates.RelativeLabel(first.Text, now),
		}
	}

	s.logger.Debug("Filename pass complete",
		zap.String("pass_id", passID),
		zap.Int("files", len(paths)),
		zap.Int("highlighted", len(results)),
		zap.Duration("duration", time.Since(startTime)))

	return results
}
