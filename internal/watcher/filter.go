package watcher

import (
	"path/filepath"
	"strings"
)

// DefaultIgnorePatterns returns the patterns for in-progress files that
// must never be renamed while a download or copy is still writing them.
func DefaultIgnorePatterns() []string {
	return []string{
		"*.tmp",
		"*.part",
		"*.partial",
		"*.download",
		"*.crdownload",
		".~*",
	}
}

// Filter decides which new files the watcher leaves alone.
type Filter struct {
	patterns []string
}

// NewFilter creates a Filter. Empty patterns select the defaults.
func NewFilter(patterns []string) *Filter {
	if len(patterns) == 0 {
		patterns = DefaultIgnorePatterns()
	}
	return &Filter{patterns: patterns}
}

// ShouldIgnore reports whether the path's base name matches any ignore
// pattern. Patterns use filepath.Match glob syntax; a bare extension
// pattern such as ".tmp" also matches as a case-insensitive suffix.
func (f *Filter) ShouldIgnore(path string) bool {
	name := filepath.Base(path)

	for _, pattern := range f.patterns {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return true
		}
		if strings.HasPrefix(pattern, ".") && !strings.Contains(pattern, "*") {
			if strings.HasSuffix(strings.ToLower(name), strings.ToLower(pattern)) {
				return true
			}
		}
	}
	return false
}

// Patterns returns a copy of the active ignore patterns.
func (f *Filter) Patterns() []string {
	result := make([]string, len(f.patterns))
	copy(result, f.patterns)
	return result
}
