package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	palette := cfg.GetPalette()
	if palette.RecentColor != "#a4e7c3" {
		t.Errorf("Expected default recent color '#a4e7c3', got '%s'", palette.RecentColor)
	}
	if palette.IntermediateColor != "#e7dba4" {
		t.Errorf("Expected default intermediate color '#e7dba4', got '%s'", palette.IntermediateColor)
	}
	if palette.OldColor != "#e7a4a4" {
		t.Errorf("Expected default old color '#e7a4a4', got '%s'", palette.OldColor)
	}
	if palette.TextColor != "#000000" {
		t.Errorf("Expected default text color '#000000', got '%s'", palette.TextColor)
	}
	if palette.RecentDays != 14 {
		t.Errorf("Expected default recent threshold 14, got %d", palette.RecentDays)
	}
	if palette.IntermediateDays != 30 {
		t.Errorf("Expected default intermediate threshold 30, got %d", palette.IntermediateDays)
	}

	highlight := cfg.GetHighlight()
	if !highlight.Content {
		t.Error("Expected content highlighting enabled by default")
	}
	if !highlight.Filenames {
		t.Error("Expected filename highlighting enabled by default")
	}

	workspace := cfg.GetWorkspace()
	if workspace.Root != "." {
		t.Errorf("Expected default workspace root '.', got '%s'", workspace.Root)
	}
	if len(workspace.Extensions) != 0 {
		t.Errorf("Expected no default extension filter, got %v", workspace.Extensions)
	}
	if len(workspace.ExcludedPaths) != 0 {
		t.Errorf("Expected no default exclusions, got %v", workspace.ExcludedPaths)
	}

	stylesheet := cfg.GetStylesheet()
	if stylesheet.Target != "file" {
		t.Errorf("Expected default stylesheet target 'file', got '%s'", stylesheet.Target)
	}
	if stylesheet.Output != "datetint.css" {
		t.Errorf("Expected default stylesheet output 'datetint.css', got '%s'", stylesheet.Output)
	}

	if format := cfg.GetScanner().Format; format != "ansi" {
		t.Errorf("Expected default scanner format 'ansi', got '%s'", format)
	}
}

func TestPartialOverrideKeepsOtherDefaults(t *testing.T) {
	v := NewEmptyViper()
	v.Set("colors.recent", "#00ff00")
	v.Set("thresholds.recent_days", 7)
	cfg := NewFromViper(v)

	palette := cfg.GetPalette()
	if palette.RecentColor != "#00ff00" {
		t.Errorf("Expected overridden recent color '#00ff00', got '%s'", palette.RecentColor)
	}
	if palette.RecentDays != 7 {
		t.Errorf("Expected overridden recent threshold 7, got %d", palette.RecentDays)
	}
	// Untouched keys keep their defaults.
	if palette.OldColor != "#e7a4a4" {
		t.Errorf("Expected default old color to survive, got '%s'", palette.OldColor)
	}
	if palette.IntermediateDays != 30 {
		t.Errorf("Expected default intermediate threshold to survive, got %d", palette.IntermediateDays)
	}
}

func TestThresholdOrderingRepair(t *testing.T) {
	tests := []struct {
		name         string
		recent       int
		intermediate int
		valid        bool
	}{
		{"defaults are valid", 14, 30, true},
		{"custom ascending", 7, 21, true},
		{"zero recent", 0, 1, true},
		{"recent above intermediate", 40, 30, false},
		{"equal thresholds", 30, 30, false},
		{"negative recent", -5, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewEmptyViper()
			v.Set("thresholds.recent_days", tt.recent)
			v.Set("thresholds.intermediate_days", tt.intermediate)
			cfg := NewFromViper(v)

			if cfg.ThresholdsValid() != tt.valid {
				t.Errorf("Expected ThresholdsValid() = %v", tt.valid)
			}

			palette := cfg.GetPalette()
			if tt.valid {
				if palette.RecentDays != tt.recent || palette.IntermediateDays != tt.intermediate {
					t.Errorf("Expected thresholds %d/%d to be kept, got %d/%d",
						tt.recent, tt.intermediate, palette.RecentDays, palette.IntermediateDays)
				}
			} else {
				if palette.RecentDays != 14 || palette.IntermediateDays != 30 {
					t.Errorf("Expected fallback thresholds 14/30, got %d/%d",
						palette.RecentDays, palette.IntermediateDays)
				}
			}
		})
	}
}

func TestHighlightToggleOverrides(t *testing.T) {
	v := NewEmptyViper()
	v.Set("highlight.content", false)
	cfg := NewFromViper(v)

	highlight := cfg.GetHighlight()
	if highlight.Content {
		t.Error("Expected content highlighting disabled")
	}
	if !highlight.Filenames {
		t.Error("Expected filename highlighting to keep its default")
	}
}

func TestWatchDebounce(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"default", "", 500 * time.Millisecond},
		{"custom", "2s", 2 * time.Second},
		{"unparseable falls back", "soon", 500 * time.Millisecond},
		{"negative falls back", "-1s", 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewEmptyViper()
			if tt.value != "" {
				v.Set("watch.debounce", tt.value)
			}
			cfg := NewFromViper(v)

			if got := cfg.GetWatch().Debounce; got != tt.expected {
				t.Errorf("Expected debounce %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewFromFile(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), "colors:\n  recent: \"#123456\"\n")

	cfg, err := NewFromFile(path)
	if err != nil {
		t.Fatal(err)
	}

	palette := cfg.GetPalette()
	if palette.RecentColor != "#123456" {
		t.Errorf("Expected recent color from file, got '%s'", palette.RecentColor)
	}
	if palette.OldColor != "#e7a4a4" {
		t.Errorf("Expected default old color to survive, got '%s'", palette.OldColor)
	}
}

func TestOnSettingsSaveReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "colors:\n  recent: \"#111111\"\n")

	cfg, err := NewFromFile(path)
	if err != nil {
		t.Fatal(err)
	}

	saved := make(chan struct{}, 8)
	if err := cfg.OnSettingsSave(func() { saved <- struct{}{} }); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("colors:\n  recent: \"#222222\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-saved:
	case <-time.After(5 * time.Second):
		t.Fatal("Expected the save callback to fire")
	}

	if got := cfg.GetPalette().RecentColor; got != "#222222" {
		t.Errorf("Expected reloaded recent color '#222222', got '%s'", got)
	}
}

func TestOnSettingsSaveConcurrentReads(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "colors:\n  recent: \"#111111\"\n")

	cfg, err := NewFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.OnSettingsSave(func() {}); err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 2000; i++ {
			palette := cfg.GetPalette()
			if palette.RecentColor != "#111111" && palette.RecentColor != "#222222" {
				t.Errorf("Unexpected recent color %q during a save", palette.RecentColor)
				return
			}
			cfg.GetHighlight()
			cfg.GetWorkspace()
		}
	}()

	// Saves land while the reader loops. Each save replaces the file
	// atomically, the way editors do, so reloads only ever see a complete
	// document with one color or the other.
	tmp := filepath.Join(dir, "config.next")
	for i := 0; i < 25; i++ {
		color := "#111111"
		if i%2 == 1 {
			color = "#222222"
		}
		if err := os.WriteFile(tmp, []byte("colors:\n  recent: \""+color+"\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.Rename(tmp, path); err != nil {
			t.Fatal(err)
		}
	}

	<-done
}

func TestWorkspaceOverrides(t *testing.T) {
	v := NewEmptyViper()
	v.Set("workspace.root", "/vault")
	v.Set("workspace.extensions", []string{".md", ".txt"})
	v.Set("workspace.excluded_paths", []string{"archive", "templates"})
	cfg := NewFromViper(v)

	workspace := cfg.GetWorkspace()
	if workspace.Root != "/vault" {
		t.Errorf("Expected workspace root '/vault', got '%s'", workspace.Root)
	}
	if len(workspace.Extensions) != 2 || workspace.Extensions[0] != ".md" {
		t.Errorf("Expected extensions [.md .txt], got %v", workspace.Extensions)
	}
	if len(workspace.ExcludedPaths) != 2 || workspace.ExcludedPaths[1] != "templates" {
		t.Errorf("Expected exclusions [archive templates], got %v", workspace.ExcludedPaths)
	}
}
