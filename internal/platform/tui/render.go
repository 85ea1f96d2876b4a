package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// halfBlock shows the top cell as foreground and the bottom cell as
// background, so one terminal row holds two board rows.
const halfBlock = "▀"

// chrome is the terminal space taken around the board: border plus the
// status and help lines.
const (
	chromeW = 2
	chromeH = 4
)

// slots lists every palette slot a screen can hold.
var slots = []core.Color{
	core.ColorBackground,
	core.ColorSnake,
	core.ColorHead,
	core.ColorFood,
}

// cellPair identifies the two stacked cells drawn by one half block.
type cellPair struct {
	top, bottom core.Color
}

// Palette holds the lipgloss styles for every pair of stacked cells.
type Palette struct {
	styles map[cellPair]lipgloss.Style
	frame  lipgloss.Style
	text   lipgloss.Style
}

// NewPalette builds styles for the theme on the given renderer.
// It fails if any theme color is invalid.
func NewPalette(r *lipgloss.Renderer, theme config.Theme) (*Palette, error) {
	if err := theme.Validate(); err != nil {
		return nil, err
	}

	colors := map[core.Color]lipgloss.Color{
		core.ColorBackground: lipgloss.Color(theme.Background),
		core.ColorSnake:      lipgloss.Color(theme.Snake),
		core.ColorHead:       lipgloss.Color(theme.Head),
		core.ColorFood:       lipgloss.Color(theme.Food),
	}

	p := &Palette{
		styles: make(map[cellPair]lipgloss.Style, len(slots)*len(slots)),
		frame: r.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Text)),
		text: r.NewStyle().Foreground(lipgloss.Color(theme.Text)),
	}
	for _, top := range slots {
		for _, bottom := range slots {
			p.styles[cellPair{top, bottom}] = r.NewStyle().
				Foreground(colors[top]).
				Background(colors[bottom])
		}
	}
	return p, nil
}

// FrameSize returns the terminal size needed to show the board.
func FrameSize(b core.Board) (w, h int) {
	return b.Cols() + chromeW, (b.Rows()+1)/2 + chromeH
}

// RenderScreen converts the presented frame to a styled string.
// Groups adjacent columns with the same colors to minimize ANSI escape sequences.
func (p *Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Cols()*s.Rows()*2 + s.Rows())

	for y := 0; y < s.Rows(); y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Cols() {
			start := cellPair{s.Get(x, y), s.Get(x, y+1)}
			n := 0
			for x < s.Cols() && (cellPair{s.Get(x, y), s.Get(x, y+1)}) == start {
				n++
				x++
			}
			sb.WriteString(p.styles[start].Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

// Frame wraps the rendered board in a border.
func (p *Palette) Frame(board string) string {
	return p.frame.Render(board)
}

// Text styles a status line.
func (p *Palette) Text(s string) string {
	return p.text.Render(s)
}
