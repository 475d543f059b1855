// Package fs provides file-based storage for analysis artifacts.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/docjudge"
)

// timestampFormat names artifacts by the report's timestamp, second
// precision, filesystem safe.
const timestampFormat = "20060102_150405"

// Ensure Writer implements docjudge.ReportWriter at compile time.
var _ docjudge.ReportWriter = (*Writer)(nil)

// Writer writes analysis artifacts to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// SaveReport writes the report as an indented JSON artifact and returns
// its path.
func (w *Writer) SaveReport(report *docjudge.Report) (string, error) {
	if err := report.Validate(); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, "analysis_"+report.Timestamp.Format(timestampFormat)+".json")
	if err := w.write(path, data); err != nil {
		return "", err
	}

	return path, nil
}

// SaveRevision writes revised content as a text artifact alongside the
// report and returns its path.
func (w *Writer) SaveRevision(report *docjudge.Report, content string) (string, error) {
	if content == "" {
		return "", docjudge.Errorf(docjudge.EINVALID, "revised content required")
	}

	path := filepath.Join(w.baseDir, "revised_content_"+report.Timestamp.Format(timestampFormat)+".txt")
	if err := w.write(path, []byte(content)); err != nil {
		return "", err
	}

	return path, nil
}

func (w *Writer) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
