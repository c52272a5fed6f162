package config

import (
	"fmt"
	"path/filepath"
)

// Paths captures resolved locations for the props command.
type Paths struct {
	SettingsFile string // path to .props.yaml (may not exist)
	File         string // properties file operated on
}

// ResolvePaths loads settings from settingsPath (DefaultSettingsFile in the
// working directory if empty), applies environment overrides, and lets a
// non-empty fileFlag take precedence over both. A relative File is resolved
// against the settings file's directory.
func ResolvePaths(settingsPath, fileFlag string) (Paths, Settings, error) {
	if settingsPath == "" {
		settingsPath = DefaultSettingsFile
	}
	abs, err := filepath.Abs(settingsPath)
	if err != nil {
		return Paths{}, Settings{}, fmt.Errorf("resolving settings path: %w", err)
	}

	if err := LoadDotEnv(filepath.Dir(abs)); err != nil {
		return Paths{}, Settings{}, fmt.Errorf("loading .env: %w", err)
	}

	s, err := Load(abs)
	if err != nil {
		return Paths{}, Settings{}, err
	}
	ApplyEnvOverrides(&s)

	file := s.File
	if fileFlag != "" {
		file = fileFlag
	} else if !filepath.IsAbs(file) {
		file = filepath.Join(filepath.Dir(abs), file)
	}
	s.File = file

	return Paths{SettingsFile: abs, File: file}, s, nil
}
