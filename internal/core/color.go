package core

// Color is a logical palette slot. The platform layer decides the actual
// terminal color for each slot.
type Color uint8

// Palette slots used by the snake renderer.
const (
	ColorBackground Color = iota
	ColorSnake
	ColorHead
	ColorFood
)

func (c Color) String() string {
	switch c {
	case ColorBackground:
		return "background"
	case ColorSnake:
		return "snake"
	case ColorHead:
		return "head"
	case ColorFood:
		return "food"
	default:
		return "unknown"
	}
}
