package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/andrewferrier/normalize-filename/internal/timestamp"
)

// FileDefaults mirrors the optional TOML defaults file. Every field is a
// pointer or slice so that absent keys leave the built-in defaults alone.
type FileDefaults struct {
	Recursive           *bool    `toml:"recursive"`
	Exclude             []string `toml:"exclude"`
	Verbose             *bool    `toml:"verbose"`
	AddTime             *bool    `toml:"add_time"`
	DiscardExistingName *bool    `toml:"discard_existing_name"`
	LowercaseExtension  *bool    `toml:"lowercase_extension"`
	TimeSource          *string  `toml:"time_source"`
	MaxYearsAhead       *int     `toml:"max_years_ahead"`
	MaxYearsBehind      *int     `toml:"max_years_behind"`
	UndoLogFile         *string  `toml:"undo_log_file"`
	MonthNames          []string `toml:"month_names"`
	MonthAbbreviations  []string `toml:"month_abbreviations"`
}

// DefaultPath returns the conventional defaults-file location, or an
// empty string when no user configuration directory is available.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "normalize-filename", "config.toml")
}

// LoadFile reads the TOML defaults file at path. A missing file is only
// an error when required is true, so the conventional location can be
// probed without complaint.
func LoadFile(path string, required bool) (*FileDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{Type: FileNotFound, Path: path}
		}
		return nil, &ConfigError{Type: FileNotFound, Path: path, Message: err.Error()}
	}

	var defaults FileDefaults
	if err := toml.Unmarshal(data, &defaults); err != nil {
		return nil, &ConfigError{Type: InvalidTOML, Message: err.Error()}
	}
	return &defaults, nil
}

// Apply folds the file defaults into the configuration. Values given on
// the command line are applied after this, so flags always win.
func (c *Configuration) Apply(defaults *FileDefaults) {
	if defaults == nil {
		return
	}
	if defaults.Recursive != nil {
		c.Recursive = *defaults.Recursive
	}
	if len(defaults.Exclude) > 0 {
		c.Excludes = append(c.Excludes, defaults.Exclude...)
	}
	if defaults.Verbose != nil {
		c.Verbose = *defaults.Verbose
	}
	if defaults.AddTime != nil {
		c.AddTime = *defaults.AddTime
	}
	if defaults.DiscardExistingName != nil {
		c.DiscardExistingName = *defaults.DiscardExistingName
	}
	if defaults.LowercaseExtension != nil {
		c.LowercaseExtension = *defaults.LowercaseExtension
	}
	if defaults.TimeSource != nil {
		c.TimeSource = timestamp.Policy(*defaults.TimeSource)
	}
	if defaults.MaxYearsAhead != nil {
		c.MaxYearsAhead = *defaults.MaxYearsAhead
	}
	if defaults.MaxYearsBehind != nil {
		c.MaxYearsBehind = *defaults.MaxYearsBehind
	}
	if defaults.UndoLogFile != nil {
		c.UndoLogFile = *defaults.UndoLogFile
	}
	if len(defaults.MonthNames) > 0 {
		c.MonthNames = defaults.MonthNames
	}
	if len(defaults.MonthAbbreviations) > 0 {
		c.MonthAbbreviations = defaults.MonthAbbreviations
	}
}
