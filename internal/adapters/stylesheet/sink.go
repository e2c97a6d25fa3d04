package stylesheet

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// FileSink installs rebuilt stylesheets by rewriting a file at a fixed
// path. Every install replaces the previous contents wholesale; there is no
// incremental editing of an existing sheet.
type FileSink struct {
	path   string
	logger *zap.Logger
}

// NewFileSink creates a new file-backed stylesheet sink
func NewFileSink(path string, logger *zap.Logger) *FileSink {
	return &FileSink{
		path:   path,
		logger: logger,
	}
}

// Install replaces the sheet on disk with css
func (s *FileSink) Install(css string) error {
	if err := os.WriteFile(s.path, []byte(css), 0644); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}

	s.logger.Debug("Stylesheet installed",
		zap.String("path", s.path),
		zap.Int("bytes", len(css)))

	return nil
}

// WriterSink streams each rebuilt stylesheet to a writer, for hosts that
// consume sheets from a pipe rather than a file.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a new writer-backed stylesheet sink
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Install writes css to the underlying writer
func (s *WriterSink) Install(css string) error {
	if _, err := io.WriteString(s.w, css); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	return nil
}
