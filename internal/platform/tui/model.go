package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model driving one snake game.
// Bubble Tea delivers key and tick messages one at a time, so the game is
// only ever touched from Update.
type Model struct {
	game    *snake.Game
	loop    *core.Loop
	screen  *core.Screen
	palette *Palette
	keys    KeyMap
	help    help.Model
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, palette *Palette, cfg core.RuntimeConfig) Model {
	screen := core.NewScreen(game.Board())

	// Show the starting position before the first tick
	game.Render(screen)
	screen.Present()

	return Model{
		game:    game,
		loop:    core.NewLoop(game, screen, cfg.TickPeriod),
		screen:  screen,
		palette: palette,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Game returns the game driven by this model.
func (m Model) Game() *snake.Game {
	return m.game
}

// Ticks returns the number of completed loop iterations.
func (m Model) Ticks() uint64 {
	return m.loop.Ticks()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.loop.Period())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues direction changes for the next tick. Quit is applied
// at once and does not wait for the pending tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Translate(msg)
	if action == core.ActionQuit {
		m.game.Apply(action)
		return m, tea.Quit
	}
	m.loop.Input().Push(action)
	return m, nil
}

// handleTick runs one loop iteration and schedules the next one while the
// game is running.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.loop.Running() {
		return m, tea.Quit
	}
	if !m.loop.Iterate() {
		return m, tea.Quit
	}
	return m, tickCmd(m.loop.Period())
}

// View renders the presented frame with a status line and key help.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.palette.Frame(m.palette.RenderScreen(m.screen)))
	b.WriteRune('\n')
	b.WriteString(m.palette.Text(m.status()))
	b.WriteRune('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// status describes score and game state in one line.
func (m Model) status() string {
	if m.game.Running() {
		return fmt.Sprintf(" Score: %d", m.game.Score())
	}
	return fmt.Sprintf(" Score: %d  Game over (%s)", m.game.Score(), m.game.Cause())
}
