// Package config handles run configuration for normalize-filename.
package config

import (
	"fmt"
	"time"

	"github.com/andrewferrier/normalize-filename/internal/extractor"
	"github.com/andrewferrier/normalize-filename/internal/timestamp"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	FileNotFound    ConfigErrorType = "FILE_NOT_FOUND"
	InvalidTOML     ConfigErrorType = "INVALID_TOML"
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an error in the configuration.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidTOML:
		return fmt.Sprintf("invalid TOML in configuration file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// Configuration holds all settings for one run. It is immutable once a
// run starts.
type Configuration struct {
	Recursive           bool
	Excludes            []string
	DryRun              bool
	Verbose             bool
	AssumeYes           bool
	TimeSource          timestamp.Policy
	AddTime             bool
	DiscardExistingName bool
	PrefixDate          bool
	LowercaseExtension  bool
	MaxYearsAhead       int
	MaxYearsBehind      int
	UndoLogFile         string
	MonthNames          []string
	MonthAbbreviations  []string
}

// Default returns the built-in configuration.
func Default() Configuration {
	return Configuration{
		TimeSource:         timestamp.PolicyEarliest,
		PrefixDate:         true,
		LowercaseExtension: true,
		MaxYearsAhead:      5,
		MaxYearsBehind:     30,
	}
}

// Validate checks the configuration for errors.
func (c *Configuration) Validate() error {
	if c.MaxYearsAhead < 1 {
		return &ConfigError{
			Type:    ValidationError,
			Message: "maxYearsAhead must be at least 1",
		}
	}
	if c.MaxYearsBehind < 1 {
		return &ConfigError{
			Type:    ValidationError,
			Message: "maxYearsBehind must be at least 1",
		}
	}
	switch c.TimeSource {
	case timestamp.PolicyEarliest, timestamp.PolicyLatest, timestamp.PolicyNow:
	default:
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("unknown time source %q", c.TimeSource),
		}
	}
	if len(c.MonthNames) != 0 && len(c.MonthNames) != 12 {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("monthNames must have 12 entries, got %d", len(c.MonthNames)),
		}
	}
	if len(c.MonthAbbreviations) != 0 && len(c.MonthAbbreviations) != 12 {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("monthAbbreviations must have 12 entries, got %d", len(c.MonthAbbreviations)),
		}
	}
	return nil
}

// Months builds the extractor month table, applying any configured
// overrides on top of the English defaults.
func (c *Configuration) Months() extractor.MonthTable {
	table := extractor.DefaultMonths()
	if len(c.MonthNames) == 12 {
		copy(table.Names[:], c.MonthNames)
	}
	if len(c.MonthAbbreviations) == 12 {
		copy(table.Abbreviations[:], c.MonthAbbreviations)
	}
	return table
}

// ValidYears computes the plausible-year window for the given instant:
// the half-open range [year-behind, year+ahead).
func ValidYears(now time.Time, behind, ahead int) []int {
	first := now.Year() - behind
	last := now.Year() + ahead
	years := make([]int, 0, last-first)
	for y := first; y < last; y++ {
		years = append(years, y)
	}
	return years
}
