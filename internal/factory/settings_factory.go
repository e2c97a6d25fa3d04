package factory

import (
	"github.com/datetint/datetint/internal/config"
	"github.com/datetint/datetint/internal/core"
	"github.com/datetint/datetint/internal/dates"
)

// SettingsFactory converts live configuration into per-pass settings
// snapshots
type SettingsFactory struct {
	cfg *config.Config
}

// NewSettingsFactory creates a new settings factory
func NewSettingsFactory(cfg *config.Config) *SettingsFactory {
	return &SettingsFactory{cfg: cfg}
}

// Snapshot re-reads the configuration and returns the effective settings
// for one pass. A save made while the process runs is reflected in the
// next snapshot; palette and toggles are read under one lock so a save
// cannot split them.
func (f *SettingsFactory) Snapshot() core.Settings {
	palette, highlight := f.cfg.GetSnapshot()

	return core.Settings{
		Palette: dates.Palette{
			RecentColor:       palette.RecentColor,
			IntermediateColor: palette.IntermediateColor,
			OldColor:          palette.OldColor,
			TextColor:         palette.TextColor,
			RecentDays:        palette.RecentDays,
			IntermediateDays:  palette.IntermediateDays,
		},
		HighlightContent:   highlight.Content,
		HighlightFilenames: highlight.Filenames,
	}
}
