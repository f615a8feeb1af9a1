package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/games/junction"
	"github.com/vovakirdan/tui-junction/internal/platform/tui"
	"github.com/vovakirdan/tui-junction/internal/storage"
)

// Game tuning flags shared by play, menu and sim.
var (
	flagConfig     string
	flagPaths      string
	flagDifficulty string
)

// applyGameFlags validates the tuning flags and hands them to the game
// package. Explicit files must load; a broken file is reported here rather
// than silently replaced by defaults once the game starts.
func applyGameFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadJunction(flagConfig); err != nil {
			return err
		}
	}
	if flagPaths != "" {
		if _, err := config.LoadPaths(flagPaths); err != nil {
			return err
		}
	}

	junction.SetConfigPath(flagConfig)
	junction.SetPathsPath(flagPaths)
	junction.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openEventLog opens ~/.junction/junction.log, falling back to a discarding
// logger when the file cannot be created.
func openEventLog() (*log.Logger, io.Closer) {
	logger, closer, err := tui.OpenEventLog("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return tui.DiscardLogger(), io.NopCloser(nil)
	}
	return logger, closer
}

// localPlayer names the person at the keyboard for run records.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
