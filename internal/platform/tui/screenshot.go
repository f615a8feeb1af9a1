package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/core"
)

// screenshotDir is where ctrl+s writes screen dumps.
func screenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, config.UserDir, "screenshots"), nil
}

// writeScreenshot dumps the screen as plain text into dir, named after the
// mode and the time, and returns the file path.
func writeScreenshot(dir, gameID string, s *core.Screen, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", gameID, at.Format("20060102_150405")))
	return path, os.WriteFile(path, []byte(s.String()+"\n"), 0o600)
}
