package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/catcher-arcade/internal/config"
	"github.com/vovakirdan/catcher-arcade/internal/core"
	"github.com/vovakirdan/catcher-arcade/internal/games/catcher"
	"github.com/vovakirdan/catcher-arcade/internal/platform/tui"
	"github.com/vovakirdan/catcher-arcade/internal/profile"
	"github.com/vovakirdan/catcher-arcade/internal/storage"
)

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger builds the application logger. A full-screen TUI owns the
// terminal, so it logs to --log-file; the SSH server logs to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	closer := func() {}
	if w == nil {
		w = io.Discard
		if flagLogFile != "" {
			path := expandHome(flagLogFile)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, nil, fmt.Errorf("cannot open log file: %w", err)
			}
			w = f
			closer = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// configureGames passes --config and --difficulty to the game packages.
func configureGames() error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	catcher.SetConfigPath(flagConfig)
	catcher.SetDifficultyPreset(preset)
	return nil
}

// runtimeConfig returns the runtime config sized to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openServices opens the scores store and the profile. Failures are
// logged and leave the corresponding service nil; the game still runs.
func openServices(logger *log.Logger) (tui.Services, func()) {
	svc := tui.Services{Logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		svc.Store = store
	}

	pm, err := profile.Open(profile.AppName)
	if err != nil {
		logger.Warn("player profile is not persisted", "error", err)
	}
	svc.Profile = pm

	return svc, func() {
		if svc.Store != nil {
			if err := svc.Store.Close(); err != nil {
				logger.Warn("could not close scores database", "error", err)
			}
		}
	}
}

// playerName resolves the player: --name wins and is remembered,
// otherwise the profile supplies it. Empty means unknown.
func playerName(svc tui.Services) string {
	if flagName != "" {
		name, ok := profile.NormalizeName(flagName)
		if !ok {
			return ""
		}
		if svc.Profile != nil {
			if err := svc.Profile.SetName(name); err != nil {
				svc.Logger.Warn("could not remember player name", "error", err)
			}
		}
		return name
	}
	if svc.Profile != nil {
		return svc.Profile.Name()
	}
	return ""
}
