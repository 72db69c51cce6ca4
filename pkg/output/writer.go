package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer persists named byte sequences into a single output directory.
// Repeated runs overwrite files of the same name rather than accumulating
// new ones. Each successful write is reported to the configured sink.
type Writer struct {
	dir    string
	report io.Writer
}

// NewWriter creates a Writer targeting dir. Progress lines go to report
// (usually the command's stdout).
func NewWriter(dir string, report io.Writer) *Writer {
	return &Writer{dir: dir, report: report}
}

// Write persists data under the given name inside the output directory,
// creating the directory if needed, and returns the resolved path. Any
// filesystem failure is returned immediately; the caller is expected to
// abort the run, leaving earlier files intact.
func (w *Writer) Write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", w.dir, err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(w.report, "  wrote %s (%d bytes)\n", path, len(data))
	return path, nil
}
