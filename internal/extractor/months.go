// Package extractor implements the date/time extraction and rewriting
// engine for normalize-filename. It scans a filename for embedded date and
// time information in several ambiguous layouts, disambiguates among them,
// and reconstructs a canonical ISO-like prefix.
package extractor

import "strings"

// MonthTable holds the twelve full month names and their three-letter
// abbreviations, index 0 = January. Both are matched case-insensitively.
type MonthTable struct {
	Names         [12]string
	Abbreviations [12]string
}

// DefaultMonths returns the English month table.
func DefaultMonths() MonthTable {
	return MonthTable{
		Names: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		Abbreviations: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
	}
}

// Resolve maps a month name or abbreviation to its 1-based month number.
// Abbreviations are consulted before full names. The second return value
// is false when the text appears in neither table.
func (t MonthTable) Resolve(name string) (int, bool) {
	lower := strings.ToLower(name)
	for i, abbr := range t.Abbreviations {
		if strings.ToLower(abbr) == lower {
			return i + 1, true
		}
	}
	for i, full := range t.Names {
		if strings.ToLower(full) == lower {
			return i + 1, true
		}
	}
	return 0, false
}
