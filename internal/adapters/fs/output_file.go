package fs

import (
	"os"
	"path/filepath"
)

// OutputFile writes split results to a file path.
type OutputFile struct {
	path string
}

// NewOutputFile creates an OutputFile for path.
func NewOutputFile(path string) *OutputFile {
	return &OutputFile{path: path}
}

// Write replaces the file contents atomically.
// Data goes to a temp file in the same directory first, then is renamed over
// the target so readers never see a partial result.
func (f *OutputFile) Write(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Path returns the target file path.
func (f *OutputFile) Path() string {
	return f.path
}
