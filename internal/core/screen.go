package core

import (
	"strings"
)

// Surface is the drawing target handed to games each frame.
// Coordinates are in board units; the surface maps them onto its cells.
type Surface interface {
	// Clear fills the whole back buffer with c.
	Clear(c Color)
	// FillRect paints an axis-aligned rectangle in color c.
	FillRect(r Rect, c Color)
	// Present publishes the back buffer as the visible frame.
	Present()
}

// Screen is a double-buffered color canvas with one entry per board cell.
// Drawing goes to the back buffer; readers only see what was presented.
type Screen struct {
	cols   int
	rows   int
	scale  int
	back   [][]Color
	front  [][]Color
	frames uint64
}

var _ Surface = (*Screen)(nil)

// NewScreen creates a screen matching the grid of the given board.
func NewScreen(b Board) *Screen {
	s := &Screen{
		cols:  b.Cols(),
		rows:  b.Rows(),
		scale: b.CellSize,
	}
	s.back = allocate(s.cols, s.rows)
	s.front = allocate(s.cols, s.rows)
	return s
}

// allocate creates zeroed cell storage (ColorBackground).
func allocate(cols, rows int) [][]Color {
	cells := make([][]Color, rows)
	for y := range cells {
		cells[y] = make([]Color, cols)
	}
	return cells
}

// Cols returns the screen width in cells.
func (s *Screen) Cols() int {
	return s.cols
}

// Rows returns the screen height in cells.
func (s *Screen) Rows() int {
	return s.rows
}

// Frames returns how many times Present has been called.
func (s *Screen) Frames() uint64 {
	return s.frames
}

// Clear fills the back buffer with c.
func (s *Screen) Clear(c Color) {
	for y := range s.back {
		for x := range s.back[y] {
			s.back[y][x] = c
		}
	}
}

// FillRect paints every cell the rectangle touches.
// Parts outside the screen are clipped.
func (s *Screen) FillRect(r Rect, c Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := max(floorDiv(r.X, s.scale), 0)
	y0 := max(floorDiv(r.Y, s.scale), 0)
	x1 := min(ceilDiv(r.Right(), s.scale), s.cols)
	y1 := min(ceilDiv(r.Bottom(), s.scale), s.rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.back[y][x] = c
		}
	}
}

// Present copies the back buffer to the front buffer.
func (s *Screen) Present() {
	for y := range s.back {
		copy(s.front[y], s.back[y])
	}
	s.frames++
}

// Get returns the presented color at cell (col, row).
// Out-of-bounds coordinates read as background.
func (s *Screen) Get(col, row int) Color {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return ColorBackground
	}
	return s.front[row][col]
}

// glyphs is the plain-text rendering of each palette slot.
var glyphs = map[Color]rune{
	ColorBackground: '.',
	ColorSnake:      'o',
	ColorHead:       'O',
	ColorFood:       '*',
}

// String converts the presented frame to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.cols*s.rows + s.rows)

	for y := 0; y < s.rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.cols; x++ {
			r, ok := glyphs[s.front[y][x]]
			if !ok {
				r = '?'
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
