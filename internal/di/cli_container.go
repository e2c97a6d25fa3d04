package di

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/datetint/datetint/internal/adapters/workspace"
	"github.com/datetint/datetint/internal/config"
	"github.com/datetint/datetint/internal/core"
	"github.com/datetint/datetint/internal/factory"
	"github.com/datetint/datetint/internal/logging"
	"github.com/datetint/datetint/internal/ports"
)

// CLIFlags contains all command line flags for the scanner
type CLIFlags struct {
	// Input flags
	InputFile string
	Dir       string

	// Output flags
	Format string

	// Clock flags
	Now string

	// Palette flags
	RecentColor       string
	IntermediateColor string
	OldColor          string
	TextColor         string
	RecentDays        int
	IntermediateDays  int

	// Workspace flags
	Extensions string
	Exclude    string

	// General flags
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	// Input flags
	flag.StringVar(&flags.InputFile, "file", "", "Input text file (use stdin if not specified)")
	flag.StringVar(&flags.Dir, "dir", "", "Scan filenames under this directory instead of text content")

	// Output flags
	flag.StringVar(&flags.Format, "format", "ansi", "Output format (ansi, json, plain)")

	// Clock flags
	flag.StringVar(&flags.Now, "now", "", "Classify against this instant instead of the system clock (YYYY-MM-DD or RFC 3339)")

	// Palette flags
	flag.StringVar(&flags.RecentColor, "recent-color", "#a4e7c3", "Background color for recent dates")
	flag.StringVar(&flags.IntermediateColor, "intermediate-color", "#e7dba4", "Background color for intermediate dates")
	flag.StringVar(&flags.OldColor, "old-color", "#e7a4a4", "Background color for old dates")
	flag.StringVar(&flags.TextColor, "text-color", "#000000", "Text color for highlighted dates")
	flag.IntVar(&flags.RecentDays, "recent-days", 14, "Upper age bound for recent dates, in days")
	flag.IntVar(&flags.IntermediateDays, "intermediate-days", 30, "Upper age bound for intermediate dates, in days")

	// Workspace flags
	flag.StringVar(&flags.Extensions, "ext", "", "Comma-separated extension filter for directory scans")
	flag.StringVar(&flags.Exclude, "exclude", "", "Comma-separated paths excluded from directory scans")

	// General flags
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container for the scanner
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.NewFromFile(flags.ConfigFile)
			if err != nil {
				return nil, err
			}
			// -dir still picks the scan root when a config file is loaded.
			if flags.Dir != "" {
				cfg.Set("workspace.root", flags.Dir)
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		// Create config from command line flags
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// Register highlight service, optionally pinned to a fixed instant
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*core.HighlightService, error) {
		clock, err := parseClock(flags.Now)
		if err != nil {
			return nil, err
		}
		return core.NewHighlightService(logger, clock), nil
	}); err != nil {
		return nil, err
	}

	// Register settings source
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *factory.SettingsFactory {
		if !cfg.ThresholdsValid() {
			logger.Warn("Age thresholds are misordered, falling back to defaults",
				zap.Int("recent_days", cfg.GetInt("thresholds.recent_days")),
				zap.Int("intermediate_days", cfg.GetInt("thresholds.intermediate_days")))
		}
		return factory.NewSettingsFactory(cfg)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.SettingsFactory) core.SettingsSource {
		return f
	}); err != nil {
		return nil, err
	}

	// Register workspace lister for directory scans
	if err := container.Provide(workspace.NewWalker); err != nil {
		return nil, err
	}
	if err := container.Provide(func(w *workspace.Walker) core.FileLister {
		return w
	}); err != nil {
		return nil, err
	}

	// Register renderer
	if err := container.Provide(factory.NewRendererFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.RendererFactory) (ports.Renderer, error) {
		return f.CreateRenderer()
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// parseClock turns the -now flag into a clock function. An empty value
// means the system clock.
func parseClock(now string) (func() time.Time, error) {
	if now == "" {
		return nil, nil
	}
	instant, err := time.Parse("2006-01-02", now)
	if err != nil {
		instant, err = time.Parse(time.RFC3339, now)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid -now value %q: use YYYY-MM-DD or RFC 3339", now)
	}
	return func() time.Time { return instant }, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	// Set palette
	v.Set("colors.recent", flags.RecentColor)
	v.Set("colors.intermediate", flags.IntermediateColor)
	v.Set("colors.old", flags.OldColor)
	v.Set("colors.text", flags.TextColor)
	v.Set("thresholds.recent_days", flags.RecentDays)
	v.Set("thresholds.intermediate_days", flags.IntermediateDays)

	// Set output format
	v.Set("scanner.format", flags.Format)

	// Set workspace for directory scans
	if flags.Dir != "" {
		v.Set("workspace.root", flags.Dir)
	}
	if flags.Extensions != "" {
		v.Set("workspace.extensions", splitList(flags.Extensions))
	}
	if flags.Exclude != "" {
		v.Set("workspace.excluded_paths", splitList(flags.Exclude))
	}

	return config.NewFromViper(v)
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
