package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// LoadTheme loads the color theme.
// Search order: customPath -> ~/.snake/theme.yaml -> ./configs/theme.yaml -> embedded default
// Missing keys keep their default value.
func LoadTheme(customPath string) (Theme, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Theme{}, fmt.Errorf("failed to read theme %s: %w", customPath, err)
		}
		cfg, err := parseTheme(data)
		if err != nil {
			return Theme{}, fmt.Errorf("failed to parse theme %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("theme.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseTheme(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "theme.yaml")); err == nil {
		if cfg, err := parseTheme(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTheme(defaultThemeYAML)
	if err != nil {
		return DefaultTheme(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseTheme decodes YAML on top of the default theme.
func parseTheme(data []byte) (Theme, error) {
	cfg := DefaultTheme()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Theme{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
