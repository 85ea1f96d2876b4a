package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning    GameStateType = "running"
	StateTerminated GameStateType = "terminated"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      core.Direction
	FoodX    int
	FoodY    int
	State    GameStateType
	Cause    EndCause
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	if !g.running {
		state = StateTerminated
	}

	head := g.snake[0]
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.snake),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.direction,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		State:    state,
		Cause:    g.cause,
	}
}
