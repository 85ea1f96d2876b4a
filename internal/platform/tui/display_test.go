package tui

import (
	"errors"
	"os"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// fakeTerminal reports a fixed terminal state.
type fakeTerminal struct {
	tty     bool
	w, h    int
	sizeErr error
}

func (f fakeTerminal) IsTerminal(int) bool { return f.tty }

func (f fakeTerminal) GetSize(int) (int, int, error) { return f.w, f.h, f.sizeErr }

func TestOpenFailurePoints(t *testing.T) {
	board := core.DefaultConfig().Board
	badTheme := config.DefaultTheme()
	badTheme.Food = "red"
	sizeErr := errors.New("ioctl failed")

	tests := []struct {
		name     string
		term     fakeTerminal
		theme    config.Theme
		expected error
	}{
		{"not a terminal", fakeTerminal{tty: false, w: 80, h: 24}, config.DefaultTheme(), ErrDisplayInit},
		{"size error", fakeTerminal{tty: true, sizeErr: sizeErr}, config.DefaultTheme(), ErrWindow},
		{"too narrow", fakeTerminal{tty: true, w: 41, h: 24}, config.DefaultTheme(), ErrWindow},
		{"too short", fakeTerminal{tty: true, w: 80, h: 23}, config.DefaultTheme(), ErrWindow},
		{"bad theme", fakeTerminal{tty: true, w: 80, h: 24}, badTheme, ErrRenderer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := open(tc.term, os.Stdin, os.Stdout, board, tc.theme)
			if !errors.Is(err, tc.expected) {
				t.Fatalf("open() error = %v, expected %v", err, tc.expected)
			}
			if d != nil {
				t.Error("Display should be nil on failure")
			}
		})
	}
}

func TestOpenSizeErrorWrapped(t *testing.T) {
	sizeErr := errors.New("ioctl failed")
	_, err := open(fakeTerminal{tty: true, sizeErr: sizeErr}, os.Stdin, os.Stdout, core.DefaultConfig().Board, config.DefaultTheme())
	if !errors.Is(err, sizeErr) {
		t.Errorf("Expected underlying error to be wrapped, got %v", err)
	}
}

func TestOpenSuccess(t *testing.T) {
	d, err := open(fakeTerminal{tty: true, w: 120, h: 40}, os.Stdin, os.Stdout, core.DefaultConfig().Board, config.DefaultTheme())
	if err != nil {
		t.Fatalf("open() failed: %v", err)
	}
	defer d.Close()

	if w, h := d.Size(); w != 120 || h != 40 {
		t.Errorf("Size() = %dx%d, expected 120x40", w, h)
	}
	if d.Palette() == nil {
		t.Error("Palette() should not be nil")
	}

	// Close must be idempotent
	d.Close()
}
