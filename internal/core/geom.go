// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box in board units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Cell is one grid-aligned square, identified by the board coordinates
// of its top-left corner.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction represents a movement direction on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// opposites maps each direction to its reversal.
var opposites = [...]Direction{
	DirUp:    DirDown,
	DirDown:  DirUp,
	DirLeft:  DirRight,
	DirRight: DirLeft,
}

// unitSteps holds the per-direction offset in cells.
var unitSteps = [...][2]int{
	DirUp:    {0, -1},
	DirDown:  {0, 1},
	DirLeft:  {-1, 0},
	DirRight: {1, 0},
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return opposites[d]
}

// Step returns the offset of one move of the given size in direction d.
func (d Direction) Step(size int) (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	s := unitSteps[d]
	return s[0] * size, s[1] * size
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Board describes the playfield in board units.
// Width and Height are expected to be multiples of CellSize.
type Board struct {
	Width    int
	Height   int
	CellSize int
}

// Cols returns the number of grid columns.
func (b Board) Cols() int {
	return b.Width / b.CellSize
}

// Rows returns the number of grid rows.
func (b Board) Rows() int {
	return b.Height / b.CellSize
}

// Bounds returns the playfield rectangle.
func (b Board) Bounds() Rect {
	return NewRect(0, 0, b.Width, b.Height)
}

// Center returns the grid cell at the middle of the board.
func (b Board) Center() Cell {
	cx, cy := b.Bounds().Center()
	return b.Snap(cx, cy)
}

// Snap aligns a point down to the cell that contains it.
func (b Board) Snap(x, y int) Cell {
	return Cell{X: x - x%b.CellSize, Y: y - y%b.CellSize}
}

// CellAt returns the cell at grid column col and row row.
func (b Board) CellAt(col, row int) Cell {
	return Cell{X: col * b.CellSize, Y: row * b.CellSize}
}

// Contains reports whether the cell lies on the board.
func (b Board) Contains(c Cell) bool {
	return b.Bounds().Contains(c.X, c.Y)
}

// CellRect returns the square covered by c.
func (b Board) CellRect(c Cell) Rect {
	return NewRect(c.X, c.Y, b.CellSize, b.CellSize)
}
