package config

import (
	"time"

	"github.com/spf13/viper"
)

// Threshold values restored when a loaded configuration violates the
// ordering requirement.
const (
	defaultRecentDays       = 14
	defaultIntermediateDays = 30
)

// PaletteConfig represents the highlight colors and age thresholds
type PaletteConfig struct {
	RecentColor       string
	IntermediateColor string
	OldColor          string
	TextColor         string
	RecentDays        int
	IntermediateDays  int
}

// HighlightConfig represents the per-mode highlighting toggles
type HighlightConfig struct {
	Content   bool
	Filenames bool
}

// WorkspaceConfig represents the directory tree filename passes cover
type WorkspaceConfig struct {
	Root          string
	Extensions    []string
	ExcludedPaths []string
}

// StylesheetConfig represents where rebuilt stylesheets are installed
type StylesheetConfig struct {
	Target string
	Output string
}

// WatchConfig represents the rename watcher settings
type WatchConfig struct {
	Debounce time.Duration
}

// ScannerConfig represents the scanner output settings
type ScannerConfig struct {
	Format string
}

// GetPalette returns the palette configuration. Thresholds that violate the
// ordering requirement (0 <= recent < intermediate) are replaced by the
// defaults as a pair, leaving the colors untouched.
func (c *Config) GetPalette() PaletteConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return paletteFromViper(c.v)
}

func paletteFromViper(v *viper.Viper) PaletteConfig {
	p := PaletteConfig{
		RecentColor:       v.GetString("colors.recent"),
		IntermediateColor: v.GetString("colors.intermediate"),
		OldColor:          v.GetString("colors.old"),
		TextColor:         v.GetString("colors.text"),
		RecentDays:        v.GetInt("thresholds.recent_days"),
		IntermediateDays:  v.GetInt("thresholds.intermediate_days"),
	}
	if !thresholdsValid(v) {
		p.RecentDays = defaultRecentDays
		p.IntermediateDays = defaultIntermediateDays
	}
	return p
}

// ThresholdsValid reports whether the configured age thresholds satisfy
// the ordering requirement.
func (c *Config) ThresholdsValid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return thresholdsValid(c.v)
}

func thresholdsValid(v *viper.Viper) bool {
	recent := v.GetInt("thresholds.recent_days")
	intermediate := v.GetInt("thresholds.intermediate_days")
	return recent >= 0 && intermediate > recent
}

// GetHighlight returns the highlighting toggles
func (c *Config) GetHighlight() HighlightConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return highlightFromViper(c.v)
}

func highlightFromViper(v *viper.Viper) HighlightConfig {
	return HighlightConfig{
		Content:   v.GetBool("highlight.content"),
		Filenames: v.GetBool("highlight.filenames"),
	}
}

// GetSnapshot returns the palette and toggles read under a single lock, so a
// save landing between the two cannot produce a mixed pair.
func (c *Config) GetSnapshot() (PaletteConfig, HighlightConfig) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return paletteFromViper(c.v), highlightFromViper(c.v)
}

// GetWorkspace returns the workspace configuration
func (c *Config) GetWorkspace() WorkspaceConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return WorkspaceConfig{
		Root:          c.v.GetString("workspace.root"),
		Extensions:    c.v.GetStringSlice("workspace.extensions"),
		ExcludedPaths: c.v.GetStringSlice("workspace.excluded_paths"),
	}
}

// GetStylesheet returns the stylesheet configuration
func (c *Config) GetStylesheet() StylesheetConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return StylesheetConfig{
		Target: c.v.GetString("stylesheet.target"),
		Output: c.v.GetString("stylesheet.output"),
	}
}

// GetWatch returns the watcher configuration. An unparseable debounce
// falls back to the default.
func (c *Config) GetWatch() WatchConfig {
	c.mu.RLock()
	raw := c.v.GetString("watch.debounce")
	c.mu.RUnlock()

	debounce, err := time.ParseDuration(raw)
	if err != nil || debounce < 0 {
		debounce = 500 * time.Millisecond
	}
	return WatchConfig{Debounce: debounce}
}

// GetScanner returns the scanner configuration
func (c *Config) GetScanner() ScannerConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return ScannerConfig{
		Format: c.v.GetString("scanner.format"),
	}
}
