package core

import (
	"context"
)

// SettingsSource supplies the effective settings for a pass. Implementations
// re-read live configuration, so a save made while the process runs is
// visible to the next snapshot.
type SettingsSource interface {
	// Snapshot returns the settings a single pass should run against.
	Snapshot() Settings
}

// FileLister enumerates the file identifiers a filename pass considers.
type FileLister interface {
	// List returns workspace-relative, slash-separated file paths.
	List(ctx context.Context) ([]string, error)
}

// StylesheetSink installs a freshly built stylesheet into the host,
// replacing the previous sheet wholesale.
type StylesheetSink interface {
	// Install replaces the current stylesheet with css.
	Install(css string) error
}
