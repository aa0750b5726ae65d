package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputFile_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.json")
	f := NewOutputFile(path)

	if err := f.Write([]byte("first")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := f.Write([]byte("second")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want second", got)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
	if f.Path() != path {
		t.Errorf("Path() = %q, want %q", f.Path(), path)
	}
}
