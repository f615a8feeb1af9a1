package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-junction/internal/core"
)

func TestWriteScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := core.NewScreen(4, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)

	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	path, err := writeScreenshot(dir, "junction", s, at)
	if err != nil {
		t.Fatalf("writeScreenshot failed: %v", err)
	}
	if filepath.Base(path) != "junction_20240309_140507.txt" {
		t.Errorf("file name = %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "ab  \n    \n" {
		t.Errorf("contents = %q", data)
	}
}
