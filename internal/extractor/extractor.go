package extractor

import (
	"fmt"
	"strings"
	"time"
)

// ExtractErrorType represents the type of extraction error.
type ExtractErrorType string

const (
	// EmptyYearSet indicates the valid-year set was empty.
	EmptyYearSet ExtractErrorType = "EMPTY_YEAR_SET"
	// PatternCompile indicates a generated pattern failed to compile.
	PatternCompile ExtractErrorType = "PATTERN_COMPILE"
	// UnknownMonthName indicates a matched month name was in neither
	// table. Structurally unreachable with a correctly built pattern.
	UnknownMonthName ExtractErrorType = "UNKNOWN_MONTH_NAME"
	// CorruptMatch indicates a pattern matched without producing the
	// mandatory year and month captures. Signals an implementation bug.
	CorruptMatch ExtractErrorType = "CORRUPT_MATCH"
)

// ExtractError represents an internal error during extraction.
type ExtractError struct {
	Type   ExtractErrorType
	Detail string
}

func (e *ExtractError) Error() string {
	switch e.Type {
	case EmptyYearSet:
		return "valid year set is empty"
	case PatternCompile:
		return fmt.Sprintf("pattern failed to compile: %s", e.Detail)
	case UnknownMonthName:
		return fmt.Sprintf("month name not found in any table: %s", e.Detail)
	case CorruptMatch:
		return fmt.Sprintf("pattern matched without date captures: %s", e.Detail)
	default:
		return fmt.Sprintf("extraction error: %s", e.Detail)
	}
}

// Config holds the settings for one extraction run. It is immutable for
// the duration of the run.
type Config struct {
	// ValidYears is the set of plausible years; a four-digit number
	// outside this set is treated as ordinary text.
	ValidYears []int
	// DiscardExistingName drops the non-date portion of the filename.
	DiscardExistingName bool
	// AddTime synthesizes a time component on the fallback path.
	AddTime bool
	// Months supplies the name and abbreviation tables.
	Months MonthTable
}

// Match is the result of one successful extraction attempt. Exactly one
// layout produces it; the reconstructor switches on the Layout tag.
// Day, Hour, Minute and Second may be empty.
type Match struct {
	Layout Layout
	Prefix string
	Suffix string
	Year   string
	Month  string
	Day    string
	Hour   string
	Minute string
	Second string
}

// Extractor rewrites embedded dates in filenames. It is a pure value:
// no I/O, no clock access, safe for concurrent use.
type Extractor struct {
	cfg      Config
	variants []*variant
}

// New compiles the pattern set for the given configuration.
func New(cfg Config) (*Extractor, error) {
	variants, err := buildVariants(cfg.ValidYears, cfg.Months)
	if err != nil {
		return nil, err
	}
	return &Extractor{cfg: cfg, variants: variants}, nil
}

// Rewrite normalizes the date/time embedded in an extension-stripped
// filename body. When no date is found it falls back to the supplied
// instant, which the caller resolves from its clock policy.
func (e *Extractor) Rewrite(body string, fallback time.Time) (string, error) {
	m, err := e.match(body)
	if err != nil {
		return "", err
	}
	if m == nil {
		return e.fallbackName(body, fallback), nil
	}
	return e.reconstruct(m)
}

// Extract applies the pattern set and returns the match, or nil when the
// body carries no recognizable date.
func (e *Extractor) Extract(body string) (*Match, error) {
	return e.match(body)
}

func (e *Extractor) match(body string) (*Match, error) {
	for _, v := range e.variants {
		groups := v.re.FindStringSubmatch(body)
		if groups == nil {
			continue
		}

		field := func(name string) string {
			idx, ok := v.groups[name]
			if !ok {
				return ""
			}
			return groups[idx]
		}

		m := &Match{
			Layout: v.layout,
			Prefix: field("prefix"),
			Year:   field("year"),
			Month:  field("month"),
			Day:    field("day"),
			Hour:   field("hour"),
			Minute: field("minute"),
			Second: field("second"),
			// In guarded variants the tail is an alternation; at most
			// one of the two suffix groups captures text.
			Suffix: field("suffix") + field("rest"),
		}

		if m.Year == "" || m.Month == "" {
			return nil, &ExtractError{Type: CorruptMatch, Detail: body}
		}
		return m, nil
	}
	return nil, nil
}

// reconstruct builds the canonical body from a match:
// YEAR "-" MONTH ("-" DAY)? ("T" HOUR ("-" MINUTE ("-" SECOND)?)?)?
// followed, unless the existing name is discarded, by "-" + prefix when
// the prefix is non-empty, then the suffix. A dash or underscore at the
// head of the suffix belongs to the date block it was separated from, so
// it is consumed and the remainder rejoined with a dash.
func (e *Extractor) reconstruct(m *Match) (string, error) {
	month, err := e.monthNumber(m.Month)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(m.Year)
	fmt.Fprintf(&b, "-%02d", month)
	if m.Day != "" {
		b.WriteString("-")
		if len(m.Day) == 1 {
			b.WriteString("0")
		}
		b.WriteString(m.Day)
	}
	if m.Hour != "" {
		b.WriteString("T")
		b.WriteString(m.Hour)
		if m.Minute != "" {
			b.WriteString("-")
			b.WriteString(m.Minute)
			if m.Second != "" {
				b.WriteString("-")
				b.WriteString(m.Second)
			}
		}
	}

	if !e.cfg.DiscardExistingName {
		if m.Prefix != "" {
			b.WriteString("-")
			b.WriteString(m.Prefix)
		}
		suffix := m.Suffix
		if len(suffix) > 0 && (suffix[0] == '-' || suffix[0] == '_') {
			suffix = suffix[1:]
			if suffix != "" {
				b.WriteString("-")
			}
		}
		b.WriteString(suffix)
	}

	return b.String(), nil
}

// monthNumber resolves a matched month field to 1..12. Numeric fields are
// parsed directly; names are looked up in the abbreviation table first,
// then the full-name table.
func (e *Extractor) monthNumber(field string) (int, error) {
	if isDigits(field) {
		n := 0
		for _, r := range field {
			n = n*10 + int(r-'0')
		}
		return n, nil
	}
	n, ok := e.cfg.Months.Resolve(field)
	if !ok {
		return 0, &ExtractError{Type: UnknownMonthName, Detail: field}
	}
	return n, nil
}

// fallbackName produces the clock-based prefix used when no date is found.
func (e *Extractor) fallbackName(body string, instant time.Time) string {
	var b strings.Builder
	if e.cfg.AddTime {
		b.WriteString(instant.Format("2006-01-02T15-04-05"))
	} else {
		b.WriteString(instant.Format("2006-01-02"))
	}
	if !e.cfg.DiscardExistingName && strings.TrimSpace(body) != "" {
		b.WriteString("-")
		b.WriteString(body)
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
