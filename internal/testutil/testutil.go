package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// TempSnapshot is a snapshot document written to a temporary directory
type TempSnapshot struct {
	Path string
	T    *testing.T
}

// NewTempSnapshot writes content to snapshot.json inside a fresh temp dir.
// The directory is removed when the test ends.
func NewTempSnapshot(t *testing.T, content string) *TempSnapshot {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "abref-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Errorf("failed to cleanup temp dir: %v", err)
		}
	})

	s := &TempSnapshot{
		Path: filepath.Join(tmpDir, "snapshot.json"),
		T:    t,
	}
	s.Write(content)
	return s
}

// Write replaces the snapshot content
func (s *TempSnapshot) Write(content string) {
	s.T.Helper()
	if err := os.WriteFile(s.Path, []byte(content), 0644); err != nil {
		s.T.Fatalf("failed to write snapshot: %v", err)
	}
}

// WriteSnapshot writes content to path on an afero filesystem
func WriteSnapshot(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
}
