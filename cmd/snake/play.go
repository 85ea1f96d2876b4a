package main

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagTheme string

func init() {
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "Path to custom theme YAML")
}

func runPlay(cmd *cobra.Command, _ []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.DefaultConfig().WithSeed(seed)

	theme, err := config.LoadTheme(flagTheme)
	if err != nil {
		logger.Error("renderer creation error", "error", err)
		os.Exit(1)
	}

	display, err := tui.Open(os.Stdin, os.Stdout, cfg.Board, theme)
	if err != nil {
		logger.Error(setupMessage(err), "error", err)
		os.Exit(1)
	}

	game := snake.New(cfg, selectedRules())
	logger.Debug("starting game", "seed", seed, "classic", flagClassic)

	final, runErr := display.Run(cmd.Context(), tui.NewModel(game, display.Palette(), cfg))

	// Release the terminal before potential exit
	display.Close()

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		logger.Error("game loop failed", "error", runErr)
		os.Exit(1)
	}

	if m, ok := final.(tui.Model); ok {
		snap := m.Game().Snapshot()
		logger.Debug("game finished",
			"score", snap.Score,
			"length", snap.SnakeLen,
			"cause", snap.Cause,
			"ticks", m.Ticks(),
		)
	}
}

// setupMessage names the acquisition step that failed.
func setupMessage(err error) string {
	switch {
	case errors.Is(err, tui.ErrDisplayInit):
		return "display init error"
	case errors.Is(err, tui.ErrWindow):
		return "window creation error"
	case errors.Is(err, tui.ErrRenderer):
		return "renderer creation error"
	default:
		return "display setup error"
	}
}
