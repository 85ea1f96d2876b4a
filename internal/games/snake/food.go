package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// maxFoodAttempts bounds random resampling before falling back to a scan
// of the free cells.
const maxFoodAttempts = 64

// noFood marks a board with no free cell left.
var noFood = core.Cell{X: -1, Y: -1}

// spawnFood relocates the food. Column and row are drawn independently.
func (g *Game) spawnFood() {
	if !g.rules.FoodAvoidsSnake {
		g.food = g.randomCell()
		return
	}

	for i := 0; i < maxFoodAttempts; i++ {
		c := g.randomCell()
		if !g.isSnakeAt(c) {
			g.food = c
			return
		}
	}

	// Crowded board: pick uniformly among the cells that are still free
	free := g.freeCells()
	if len(free) == 0 {
		g.food = noFood
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// randomCell picks a uniformly random grid cell.
func (g *Game) randomCell() core.Cell {
	col := g.rng.Intn(g.board.Cols())
	row := g.rng.Intn(g.board.Rows())
	return g.board.CellAt(col, row)
}

// freeCells lists every on-board cell not covered by the snake, row by row.
func (g *Game) freeCells() []core.Cell {
	occupied := make(map[core.Cell]bool, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = true
	}

	var free []core.Cell
	for row, n := 0, g.board.Rows(); row < n; row++ {
		for col, n := 0, g.board.Cols(); col < n; col++ {
			c := g.board.CellAt(col, row)
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}
	return free
}

// isSnakeAt checks if the snake occupies the given cell.
func (g *Game) isSnakeAt(c core.Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}
