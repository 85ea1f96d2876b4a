// Package config provides YAML-based theme loading for the snake game.
// Board geometry and tick timing are fixed in core and are not configurable.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a theme color cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Theme maps palette slots to terminal colors.
// Each value is a hex color (#rgb or #rrggbb) or an ANSI code 0-255.
type Theme struct {
	Background string `yaml:"background"`
	Snake      string `yaml:"snake"`
	Head       string `yaml:"head"`
	Food       string `yaml:"food"`
	Text       string `yaml:"text"`
}

// DefaultTheme returns the classic palette: black board, green snake, red food.
func DefaultTheme() Theme {
	return Theme{
		Background: "#000000",
		Snake:      "#00ff00",
		Head:       "#00ff00",
		Food:       "#ff0000",
		Text:       "#c0c0c0",
	}
}

// Validate checks every color in the theme.
func (t Theme) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"background", t.Background},
		{"snake", t.Snake},
		{"head", t.Head},
		{"food", t.Food},
		{"text", t.Text},
	}
	for _, f := range fields {
		if !ValidColor(f.value) {
			return fmt.Errorf("theme %s %q: %w", f.name, f.value, ErrInvalidColor)
		}
	}
	return nil
}

// ValidColor reports whether s is a hex color or an ANSI color code.
func ValidColor(s string) bool {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
