// snake is the classic snake arcade game for the terminal.
//
// Usage:
//
//	snake              - Play on the 40x40 board
//	snake sim          - Run a headless game from a scripted move list
//	snake keys         - Show key bindings
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--classic       - Keep the classic wall and food quirks
//	--debug         - Enable debug logging
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed    int64
	flagClassic bool
	flagDebug   bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "snake",
})

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Steer the snake around a 40x40 board, eat the red food to grow,
and avoid the walls and your own tail.

Controls:
  Arrows/WASD/hjkl - Turn
  Q/Esc/Ctrl+C     - Quit

Examples:
  snake
  snake --seed 42
  snake --classic
  snake --theme ./my-theme.yaml
  snake sim --moves RRRUUU --print`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagClassic, "classic", false, "Classic rules: open right edge, food may spawn under the snake")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(keysCmd)
}

// selectedRules returns the ruleset chosen by the --classic flag.
func selectedRules() snake.Rules {
	if flagClassic {
		return snake.ClassicRules()
	}
	return snake.DefaultRules()
}
