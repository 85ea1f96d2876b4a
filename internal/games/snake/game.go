// Package snake implements the snake state machine: movement, growth,
// food placement and collision, one discrete tick at a time.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// EndCause records why a game stopped running.
type EndCause string

const (
	EndNone EndCause = ""
	EndWall EndCause = "wall-collision"
	EndSelf EndCause = "self-collision"
	EndQuit EndCause = "quit"
)

// Game implements the Snake game.
type Game struct {
	board core.Board
	rules Rules
	rng   *rand.Rand
	tick  uint64
	score int

	// Snake state
	snake     []core.Cell // Head at index 0
	direction core.Direction

	food core.Cell

	running bool
	cause   EndCause
}

var _ core.Sim = (*Game)(nil)

// New creates a game with a single segment at the board center moving
// right, and places the first food.
func New(cfg core.RuntimeConfig, rules Rules) *Game {
	g := &Game{
		board:     cfg.Board,
		rules:     rules,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		snake:     []core.Cell{cfg.Board.Center()},
		direction: core.DirRight,
		running:   true,
	}
	g.spawnFood()
	return g
}

// Update advances the game by exactly one tick. It does nothing once the
// game has stopped.
func (g *Game) Update() {
	if !g.running {
		return
	}
	g.tick++

	dx, dy := g.direction.Step(g.board.CellSize)
	newHead := g.snake[0].Add(dx, dy)

	if newHead == g.food {
		g.score++
		g.snake = append([]core.Cell{newHead}, g.snake...)
		g.spawnFood()
	} else {
		copy(g.snake[1:], g.snake[:len(g.snake)-1])
		g.snake[0] = newHead
	}

	if g.rules.hitsWall(g.board, newHead) {
		g.stop(EndWall)
	}
	for _, seg := range g.snake[1:] {
		if seg == newHead {
			g.stop(EndSelf)
		}
	}
}

// Turn requests a new direction. It takes effect on the next Update unless
// it reverses the current direction, in which case it is ignored.
// Returns whether the request was accepted.
func (g *Game) Turn(d core.Direction) bool {
	if !d.Valid() || d == g.direction.Opposite() {
		return false
	}
	g.direction = d
	return true
}

// Quit stops the game immediately.
func (g *Game) Quit() {
	g.stop(EndQuit)
}

// Apply translates an input action into a turn or a quit.
func (g *Game) Apply(a core.Action) {
	if a == core.ActionQuit {
		g.Quit()
		return
	}
	if d, ok := a.Direction(); ok {
		g.Turn(d)
	}
}

// stop drops the running flag. Only the first cause is kept.
func (g *Game) stop(cause EndCause) {
	if !g.running {
		return
	}
	g.running = false
	g.cause = cause
}

// Running reports whether the game still accepts updates.
func (g *Game) Running() bool {
	return g.running
}

// Cause returns why the game ended, or EndNone while it is running.
func (g *Game) Cause() EndCause {
	return g.cause
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score
}

// Direction returns the committed movement direction.
func (g *Game) Direction() core.Direction {
	return g.direction
}

// Head returns the first segment.
func (g *Game) Head() core.Cell {
	return g.snake[0]
}

// Len returns the number of segments.
func (g *Game) Len() int {
	return len(g.snake)
}

// Body returns a copy of the segments, head first.
func (g *Game) Body() []core.Cell {
	out := make([]core.Cell, len(g.snake))
	copy(out, g.snake)
	return out
}

// Food returns the food position. It is off-board when no free cell was left.
func (g *Game) Food() core.Cell {
	return g.food
}

// Board returns the playfield the game runs on.
func (g *Game) Board() core.Board {
	return g.board
}

// Render draws the background, the snake and then the food.
func (g *Game) Render(dst core.Surface) {
	dst.Clear(core.ColorBackground)

	for i, seg := range g.snake {
		c := core.ColorSnake
		if i == 0 {
			c = core.ColorHead
		}
		dst.FillRect(g.board.CellRect(seg), c)
	}

	if g.board.Contains(g.food) {
		dst.FillRect(g.board.CellRect(g.food), core.ColorFood)
	}
}
