package ports

import (
	"context"
)

// FileHighlighter defines the interface for keeping host filename styling
// in sync with the workspace
type FileHighlighter interface {
	// Refresh runs one filename pass and installs the resulting stylesheet
	Refresh(ctx context.Context) error

	// Start begins watching the workspace for rename activity
	Start() error

	// Stop stops watching and releases the watcher
	Stop() error
}
