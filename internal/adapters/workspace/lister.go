package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/datetint/datetint/internal/config"
	"github.com/datetint/datetint/internal/exclude"
)

// Walker lists the files a filename pass covers. It re-reads the workspace
// configuration on every listing, so extension and exclusion changes saved
// while the process runs take effect on the next pass.
type Walker struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewWalker creates a new workspace walker
func NewWalker(cfg *config.Config, logger *zap.Logger) *Walker {
	return &Walker{
		cfg:    cfg,
		logger: logger,
	}
}

// List walks the workspace root and returns the relative, slash-separated
// paths of every file that passes the extension filter and the exclusion
// list. Dot directories never contribute files.
func (w *Walker) List(ctx context.Context) ([]string, error) {
	ws := w.cfg.GetWorkspace()
	excluded := exclude.New(ws.ExcludedPaths, w.logger)

	var files []string
	err := filepath.WalkDir(ws.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(ws.Root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") || excluded.Match(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if excluded.Match(rel) {
			return nil
		}
		if !matchesExtension(d.Name(), ws.Extensions) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk workspace: %w", err)
	}

	w.logger.Debug("Workspace listed",
		zap.String("root", ws.Root),
		zap.Int("files", len(files)))

	return files, nil
}

// matchesExtension checks name against the configured extension filter. An
// empty filter admits every file.
func matchesExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if strings.EqualFold(filepath.Ext(name), ext) {
			return true
		}
	}
	return false
}
