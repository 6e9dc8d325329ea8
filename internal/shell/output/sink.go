package output

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// =============================================================================
// Sinks
// =============================================================================

// Sink receives a rendered artifact destined for path.
type Sink interface {
	Write(path, title string, data []byte) error
}

// FileSink writes artifacts to a filesystem, replacing existing files.
type FileSink struct {
	fs   afero.Fs
	perm os.FileMode
}

// NewFileSink creates a FileSink. Parent directories must already exist.
func NewFileSink(fs afero.Fs) *FileSink {
	return &FileSink{fs: fs, perm: 0o644}
}

// Write replaces the file at path with data.
func (s *FileSink) Write(path, _ string, data []byte) error {
	if err := afero.WriteFile(s.fs, path, data, s.perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// PreviewSink prints artifacts instead of writing them.
type PreviewSink struct {
	printer *Printer
}

// NewPreviewSink creates a PreviewSink printing through p.
func NewPreviewSink(p *Printer) *PreviewSink {
	return &PreviewSink{printer: p}
}

// Write prints data under a banner named title; path is ignored.
func (s *PreviewSink) Write(_, title string, data []byte) error {
	return s.printer.Preview(title, data)
}
