package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Setup failures, one per acquisition step.
var (
	ErrDisplayInit = errors.New("display init failed")
	ErrWindow      = errors.New("window unavailable")
	ErrRenderer    = errors.New("renderer unavailable")
)

// terminal abstracts the probing done by golang.org/x/term.
type terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

type sysTerminal struct{}

func (sysTerminal) IsTerminal(fd int) bool { return term.IsTerminal(fd) }

func (sysTerminal) GetSize(fd int) (int, int, error) { return term.GetSize(fd) }

// Display owns the terminal for the lifetime of one game.
type Display struct {
	in      *os.File
	out     *os.File
	width   int
	height  int
	palette *Palette
	cancel  context.CancelFunc
}

// Open acquires the terminal in three steps: check that in and out are a
// terminal, check that the window fits the board, build the palette.
// Each step fails with its own sentinel error.
func Open(in, out *os.File, board core.Board, theme config.Theme) (*Display, error) {
	return open(sysTerminal{}, in, out, board, theme)
}

func open(t terminal, in, out *os.File, board core.Board, theme config.Theme) (*Display, error) {
	if !t.IsTerminal(int(in.Fd())) || !t.IsTerminal(int(out.Fd())) {
		return nil, fmt.Errorf("%w: stdin and stdout must be a terminal", ErrDisplayInit)
	}

	width, height, err := t.GetSize(int(out.Fd()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindow, err)
	}
	needW, needH := FrameSize(board)
	if width < needW || height < needH {
		return nil, fmt.Errorf("%w: need %dx%d, terminal is %dx%d", ErrWindow, needW, needH, width, height)
	}

	palette, err := NewPalette(lipgloss.NewRenderer(out), theme)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderer, err)
	}

	return &Display{
		in:      in,
		out:     out,
		width:   width,
		height:  height,
		palette: palette,
	}, nil
}

// Size returns the terminal size measured at Open.
func (d *Display) Size() (width, height int) {
	return d.width, d.height
}

// Palette returns the styles built for this terminal.
func (d *Display) Palette() *Palette {
	return d.palette
}

// Run runs the model on the alternate screen until it quits.
func (d *Display) Run(ctx context.Context, m tea.Model) (tea.Model, error) {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithInput(d.in),
		tea.WithOutput(d.out),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	return p.Run()
}

// Close releases the terminal. It stops a program that is still running
// and is safe to call more than once.
func (d *Display) Close() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
