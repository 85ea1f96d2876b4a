package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// tinyConfig is a 2x2 grid, small enough to fill by hand.
func tinyConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig().WithSeed(seed)
	cfg.Board = core.Board{Width: 40, Height: 40, CellSize: 20}
	return cfg
}

func TestFoodSpawnValidity(t *testing.T) {
	g := newTestGame(999, DefaultRules())
	g.snake = []core.Cell{
		{X: 400, Y: 400},
		{X: 380, Y: 400},
		{X: 360, Y: 400},
		{X: 340, Y: 400},
	}

	for i := 0; i < 200; i++ {
		g.spawnFood()

		if g.isSnakeAt(g.food) {
			t.Fatalf("Food spawned on snake at (%d, %d)", g.food.X, g.food.Y)
		}
		if !g.board.Contains(g.food) {
			t.Fatalf("Food spawned out of bounds at (%d, %d)", g.food.X, g.food.Y)
		}
		if g.food.X%core.CellSize != 0 || g.food.Y%core.CellSize != 0 {
			t.Fatalf("Food not grid aligned at (%d, %d)", g.food.X, g.food.Y)
		}
	}
}

func TestFoodSpawnCoversGrid(t *testing.T) {
	g := New(tinyConfig(4), ClassicRules())

	seen := make(map[core.Cell]bool)
	for i := 0; i < 500; i++ {
		g.spawnFood()
		seen[g.food] = true
	}

	if len(seen) != 4 {
		t.Errorf("Expected all 4 cells to be reachable, saw %d", len(seen))
	}
}

func TestFoodLastFreeCell(t *testing.T) {
	g := New(tinyConfig(17), DefaultRules())
	g.snake = []core.Cell{{X: 20, Y: 20}, {X: 0, Y: 20}, {X: 0, Y: 0}}

	g.spawnFood()

	if expected := (core.Cell{X: 20, Y: 0}); g.food != expected {
		t.Errorf("Food = %+v, expected only free cell %+v", g.food, expected)
	}
}

func TestFoodNoFreeCell(t *testing.T) {
	g := New(tinyConfig(17), DefaultRules())
	g.snake = []core.Cell{{X: 20, Y: 20}, {X: 0, Y: 20}, {X: 0, Y: 0}, {X: 20, Y: 0}}

	g.spawnFood()

	if g.food != noFood {
		t.Fatalf("Expected food parked off-board, got %+v", g.food)
	}

	screen := core.NewScreen(g.board)
	g.Render(screen)
	screen.Present()
	for row, n := 0, screen.Rows(); row < n; row++ {
		for col, n := 0, screen.Cols(); col < n; col++ {
			if screen.Get(col, row) == core.ColorFood {
				t.Errorf("Parked food should not be drawn, found at (%d, %d)", col, row)
			}
		}
	}
}

func TestFreeCells(t *testing.T) {
	g := New(tinyConfig(1), DefaultRules())
	g.snake = []core.Cell{{X: 0, Y: 0}}

	free := g.freeCells()
	if len(free) != 3 {
		t.Fatalf("Expected 3 free cells, got %d", len(free))
	}
	for _, c := range free {
		if c == (core.Cell{X: 0, Y: 0}) {
			t.Error("Occupied cell listed as free")
		}
	}
}
