package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteAndReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "examples")
	var report bytes.Buffer

	w := NewWriter(dir, &report)
	path, err := w.Write("simple_v1.bin", []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("Content mismatch: %v", got)
	}

	line := report.String()
	if !strings.Contains(line, "simple_v1.bin") || !strings.Contains(line, "(3 bytes)") {
		t.Errorf("Report line missing name or byte count: %q", line)
	}
}

func TestWriteOverwritesPriorRun(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, &bytes.Buffer{})

	if _, err := w.Write("f.bin", []byte("first run, longer content")); err != nil {
		t.Fatal(err)
	}
	path, err := w.Write("f.bin", []byte("second"))
	if err != nil {
		t.Fatal(err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "second" {
		t.Errorf("Expected overwrite, got %q", got)
	}
}

func TestWriteFailsOnUnwritableTarget(t *testing.T) {
	// Using a regular file as the output directory makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewWriter(blocker, &bytes.Buffer{})
	if _, err := w.Write("f.bin", []byte("data")); err == nil {
		t.Fatal("Expected an error writing into a non-directory")
	}
}
