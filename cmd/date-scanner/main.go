package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/datetint/datetint/internal/adapters/stylesheet"
	"github.com/datetint/datetint/internal/config"
	"github.com/datetint/datetint/internal/core"
	"github.com/datetint/datetint/internal/dates"
	"github.com/datetint/datetint/internal/di"
	"github.com/datetint/datetint/internal/ports"
	"github.com/datetint/datetint/internal/utils"
)

func main() {
	flags := di.ParseFlags()

	// Build the dependency injection container
	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the scan. Each mode resolves only its own dependencies; a
	// directory scan never constructs a renderer.
	if flags.Dir != "" {
		err = container.Invoke(scanFilenames)
	} else {
		err = container.Invoke(scanContent)
	}
	if err != nil {
		fmt.Printf("Scan error: %v\n", err)
		os.Exit(1)
	}
}

// scanContent runs one content pass over a file or stdin and renders the
// marks in the configured format
func scanContent(
	flags *di.CLIFlags,
	cfg *config.Config,
	logger *zap.Logger,
	service *core.HighlightService,
	settings core.SettingsSource,
	renderer ports.Renderer,
) error {
	defer logger.Sync()

	// Read text from file or stdin
	var reader io.Reader
	source := "stdin"
	if flags.InputFile != "" {
		file, err := os.Open(flags.InputFile)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		reader = file
		source = flags.InputFile
		logger.Debug("Reading text from file", zap.String("file", flags.InputFile))
	} else {
		reader = os.Stdin
		logger.Debug("Reading text from stdin")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	text := string(data)

	current := settings.Snapshot()
	human := cfg.GetScanner().Format == "ansi"

	// Print scan summary for human output; machine formats stay clean for
	// pipelines.
	if human {
		fmt.Printf("\n=== Scan Summary ===\n")
		fmt.Printf("Source: %s\n", source)
		fmt.Printf("Size: %d bytes, %d lines\n", len(text), utils.NewLineIndex(text).Lines())
		fmt.Printf("Formats: %s\n", strings.Join(dates.Formats(), ", "))
		fmt.Printf("Thresholds: recent <= %d days, intermediate <= %d days\n",
			current.Palette.RecentDays, current.Palette.IntermediateDays)
		fmt.Printf("\n")
	}

	startTime := time.Now()
	marks := service.HighlightVisible([]core.VisibleRange{
		{Start: 0, End: len(text), Text: text},
	}, current)
	duration := time.Since(startTime)

	// Print results
	if human {
		fmt.Printf("=== Marks: %d ===\n", len(marks))
	}
	if err := renderer.Render(os.Stdout, text, marks); err != nil {
		return fmt.Errorf("failed to render marks: %w", err)
	}
	if human {
		fmt.Printf("\nProcessing time: %v\n", duration)
	}

	return nil
}

// scanFilenames runs one filename pass over a directory and writes the
// resulting stylesheet to stdout
func scanFilenames(
	logger *zap.Logger,
	service *core.HighlightService,
	settings core.SettingsSource,
	lister core.FileLister,
) error {
	defer logger.Sync()

	current := settings.Snapshot()

	startTime := time.Now()
	paths, err := lister.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list directory: %w", err)
	}

	results := service.HighlightFilenames(paths, current)
	css := stylesheet.Build(results)
	duration := time.Since(startTime)

	// Stdout carries only the sheet, so it can be redirected into place.
	logger.Info("Filename scan complete",
		zap.Int("files", len(paths)),
		zap.Int("highlighted", len(results)),
		zap.Duration("duration", duration))

	fmt.Print(css)

	return nil
}
