package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Rules toggles the two behaviors where the classic game is known to be
// wrong.
type Rules struct {
	// StrictWalls checks both axes against both board edges. When false the
	// classic check is used: x is only tested against 0 and y is tested
	// against the width and the height, so the right edge is open.
	StrictWalls bool

	// FoodAvoidsSnake resamples food positions that land on the body.
	FoodAvoidsSnake bool
}

// DefaultRules returns the corrected ruleset.
func DefaultRules() Rules {
	return Rules{
		StrictWalls:     true,
		FoodAvoidsSnake: true,
	}
}

// ClassicRules reproduces the classic game including its wall and food quirks.
func ClassicRules() Rules {
	return Rules{}
}

// hitsWall reports whether head is outside the playfield under these rules.
func (r Rules) hitsWall(b core.Board, head core.Cell) bool {
	if r.StrictWalls {
		return !b.Contains(head)
	}
	return head.X < 0 || head.Y >= b.Width || head.Y < 0 || head.Y >= b.Height
}
