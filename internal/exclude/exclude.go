package exclude

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// List provides functionality to check if workspace paths are excluded
// from filename highlighting
type List struct {
	prefixes []string
	logger   *zap.Logger
}

// New creates a new exclusion list. Entries are normalized to slash-separated
// form without trailing slashes; empty entries are dropped.
func New(paths []string, logger *zap.Logger) *List {
	prefixes := make([]string, 0, len(paths))
	for _, path := range paths {
		p := strings.TrimSpace(filepath.ToSlash(path))
		p = strings.Trim(p, "/")
		if p == "" {
			continue
		}
		prefixes = append(prefixes, p)
	}

	return &List{
		prefixes: prefixes,
		logger:   logger,
	}
}

// Match checks if path falls under any excluded entry. An entry matches
// itself and everything below it, on whole path segments: "archive" excludes
// archive/2024.md but not archived-notes.md.
func (l *List) Match(path string) bool {
	if len(l.prefixes) == 0 {
		return false
	}

	p := strings.Trim(filepath.ToSlash(path), "/")
	for _, prefix := range l.prefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			if l.logger != nil {
				l.logger.Debug("Path is excluded",
					zap.String("path", path),
					zap.String("rule", prefix))
			}
			return true
		}
	}

	return false
}
