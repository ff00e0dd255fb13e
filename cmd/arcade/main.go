// arcade runs Coin Catcher in the terminal or serves it over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (default: catcher)
//	arcade menu              - Start menu with game picker and scoreboard
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores for a game
//	arcade profile           - Show, set or clear the remembered player name
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--name <player>       - Player name for the scoreboard (remembered)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Log file while the TUI runs (default: ~/.arcade/arcade.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/catcher-arcade/internal/games/catcher"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagName       string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Coin Catcher - catch falling coins in your terminal",
	Long: `Coin Catcher is a terminal arcade game: walk along the bottom of the
screen, catch falling coins, dodge the bombs and grab power-ups.

Available commands:
  list     - Show all available games
  play     - Play directly
  menu     - Interactive menu with scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  profile  - Show or change the remembered player name

Examples:
  arcade play
  arcade play --difficulty hard --name ann
  arcade menu
  arcade serve --ssh :2222
  arcade scores`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagName, "name", "", "Player name shown on the scoreboard (remembered)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Log file used while the TUI runs")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profileCmd)
}
