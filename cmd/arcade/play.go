package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catcher-arcade/internal/config"
	"github.com/vovakirdan/catcher-arcade/internal/games/catcher"
	"github.com/vovakirdan/catcher-arcade/internal/platform/tui"
	"github.com/vovakirdan/catcher-arcade/internal/registry"
)

var flagPrintConfig bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: catcher).

Controls:
  Left/A/H   - Walk left
  Right/D/L  - Walk right
  P/Esc      - Pause
  R          - Restart (after game over)
  B          - Back (when paused or after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower falls, start with every life
  normal - Default tuning
  hard   - Faster falls, start with two lives
  fixed  - No level progression

Examples:
  arcade play
  arcade play catcher --difficulty easy
  arcade play --config ./my-catcher.yaml
  arcade play --print-config > my-catcher.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPrintConfig, "print-config", false, "Print the default game config YAML and exit")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := catcher.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if flagPrintConfig {
		data := config.DefaultYAML(gameID)
		if data == nil {
			fmt.Fprintf(os.Stderr, "Error: %q has no configuration\n", gameID)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	if err := configureGames(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(nil, "arcade")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if cg, ok := game.(*catcher.Game); ok && cg.ConfigError() != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", cg.ConfigError())
		logger.Warn("config not loaded", "error", cg.ConfigError())
	}

	svc, closeSvc := openServices(logger)
	cfg := runtimeConfig()

	player := playerName(svc)
	if player == "" {
		name, ok, nameErr := tui.RunNameEntry("", cfg.ScreenW, cfg.ScreenH)
		if nameErr != nil {
			logger.Error("name entry failed", "error", nameErr)
		}
		if ok {
			player = name
			if svc.Profile != nil {
				if err := svc.Profile.SetName(name); err != nil {
					logger.Warn("could not remember player name", "error", err)
				}
			}
		}
	}

	runErr := tui.Run(game, svc, cfg, player)
	closeSvc()

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
