package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")
	if err := SaveDocx(sampleReport(), path); err != nil {
		t.Fatalf("SaveDocx error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
}

func TestSaveDocx_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.docx")
	if err := SaveDocx(sampleReport(), path); err == nil {
		t.Error("Expected error when the directory does not exist")
	}
}
