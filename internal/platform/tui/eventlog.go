package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-junction/internal/config"
)

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *log.Logger {
	return log.New(io.Discard)
}

// OpenEventLog opens the game event log, appending to path.
// An empty path means ~/.junction/junction.log. The terminal belongs to the
// TUI while a game runs, so events go to a file instead of stderr.
// The caller closes the returned file.
func OpenEventLog(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, config.UserDir, "junction.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("tui: cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: cannot open event log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "junction",
	})
	return logger, f, nil
}
