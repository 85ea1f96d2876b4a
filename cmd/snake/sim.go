package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagMoves string
	flagTicks int
	flagDelay time.Duration
	flagPrint bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game from a scripted move list",
	Long: `Run the game loop without a terminal UI. Each character of --moves is
the input for one tick:

  U/D/L/R - Turn up, down, left or right
  .       - No input

After the script ends the snake keeps going straight. The run stops when
the game ends or after --ticks ticks (0 = no limit).

Examples:
  snake sim --moves RRRUUU --print
  snake sim --seed 7 --moves "..D..L" --ticks 50
  snake sim --moves UUUU --delay 100ms`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Per-tick input script (U/D/L/R/.)")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = until game over)")
	simCmd.Flags().DurationVar(&flagDelay, "delay", 0, "Delay between ticks")
	simCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the final frame")
}

func runSim(cmd *cobra.Command, _ []string) {
	moves, err := parseMoves(flagMoves)
	if err != nil {
		logger.Error("invalid move script", "error", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.DefaultConfig().WithSeed(seed)
	cfg.TickPeriod = flagDelay

	game := snake.New(cfg, selectedRules())
	screen := core.NewScreen(cfg.Board)
	loop := core.NewLoop(game, screen, cfg.TickPeriod)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sched := newScriptScheduler(core.TimerScheduler{}, loop.Input(), moves, flagTicks, cancel)
	if err := loop.Run(ctx, sched); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	snap := game.Snapshot()
	logger.Info("simulation finished",
		"seed", seed,
		"ticks", loop.Ticks(),
		"score", snap.Score,
		"length", snap.SnakeLen,
		"head", fmt.Sprintf("(%d,%d)", snap.HeadX, snap.HeadY),
		"state", snap.State,
		"cause", snap.Cause,
	)

	if flagPrint {
		fmt.Println(screen.String())
	}
}

// parseMoves turns a script such as "RRU.L" into per-tick actions.
func parseMoves(script string) ([]core.Action, error) {
	moves := make([]core.Action, 0, len(script))
	for i, r := range strings.ToUpper(script) {
		switch r {
		case 'U':
			moves = append(moves, core.ActionUp)
		case 'D':
			moves = append(moves, core.ActionDown)
		case 'L':
			moves = append(moves, core.ActionLeft)
		case 'R':
			moves = append(moves, core.ActionRight)
		case '.':
			moves = append(moves, core.ActionNone)
		default:
			return nil, fmt.Errorf("unknown move %q at position %d", r, i)
		}
	}
	return moves, nil
}

// scriptScheduler feeds one scripted action per tick and stops the loop
// after a fixed number of ticks.
type scriptScheduler struct {
	next   core.Scheduler
	input  *core.InputQueue
	moves  []core.Action
	limit  int
	done   int
	cancel context.CancelFunc
}

// newScriptScheduler queues the first move so it is consumed by the first tick.
func newScriptScheduler(next core.Scheduler, input *core.InputQueue, moves []core.Action, limit int, cancel context.CancelFunc) *scriptScheduler {
	s := &scriptScheduler{
		next:   next,
		input:  input,
		moves:  moves,
		limit:  limit,
		cancel: cancel,
	}
	s.feed()
	return s
}

// Wait implements core.Scheduler.
func (s *scriptScheduler) Wait(ctx context.Context, d time.Duration) error {
	s.done++
	if s.limit > 0 && s.done >= s.limit {
		s.cancel()
		return ctx.Err()
	}
	if err := s.next.Wait(ctx, d); err != nil {
		return err
	}
	s.feed()
	return nil
}

func (s *scriptScheduler) feed() {
	if s.done < len(s.moves) {
		s.input.Push(s.moves[s.done])
	}
}
