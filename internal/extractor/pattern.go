package extractor

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Layout identifies which date-component ordering a pattern recognizes.
type Layout string

const (
	// LayoutYearFirst is YEAR [sep] MONTH ([sep] DAY)?, day optional.
	LayoutYearFirst Layout = "YEAR_FIRST"
	// LayoutDayFirst is DAY [sep] MONTH [sep] YEAR, all components required.
	LayoutDayFirst Layout = "DAY_FIRST"
	// LayoutMonthYear is MONTH_NAME [sep] YEAR, month must be a name.
	LayoutMonthYear Layout = "MONTH_YEAR"
)

// Field grammar fragments. Separators between date components may be a
// dash, underscore, dot, or whitespace, independently chosen per pair,
// and in most positions may be absent entirely.
const (
	reqSep = `[-_.\s]`
	optSep = `[-_.\s]?`

	twoDigitMonth = `0[1-9]|1[0-2]`
	oneDigitMonth = `[1-9]`
	twoDigitDay   = `0[1-9]|[12][0-9]|3[01]`
	oneDigitDay   = `[1-9]`

	hourValue   = `2[0-3]|[01][0-9]`
	sixtyValue  = `[0-5][0-9]`
	dateTimeSep = `(?: at |, |[-_T\s])`
	intraTime   = `[-_.:\s]?`
)

// variant is one compiled pattern for one layout. The ordered variant list
// is the explicit tie-break contract: variants are attempted in sequence
// and the first whole-string match wins.
type variant struct {
	layout Layout
	re     *regexp.Regexp
	groups map[string]int
}

// timeFragment recognizes an optional trailing time block: a date/time
// separator, a two-digit hour, then optional minute and second.
func timeFragment() string {
	return dateTimeSep + `(?P<hour>` + hourValue + `)` +
		`(?:` + intraTime + `(?P<minute>` + sixtyValue + `)` +
		`(?:` + intraTime + `(?P<second>` + sixtyValue + `))?)?`
}

// freeTail allows any trailing text after the date, with or without a
// time block.
func freeTail() string {
	return `(?:` + timeFragment() + `)?(?P<suffix>.*)$`
}

// guardedTail is used when the last matched date component is a bare
// single digit. RE2 has no lookahead, so the "single digit must not be
// followed by another digit" rule is encoded structurally: either a time
// block follows (its separator is never a digit), or the remaining text
// is empty or starts with a non-digit.
func guardedTail() string {
	return `(?:` + timeFragment() + `(?P<rest>.*)|(?P<suffix>(?:\D.*)?))$`
}

// yearFragment builds an exact alternation over the valid-year set. A
// four-digit number outside the set never matches as a year.
func yearFragment(years []int) string {
	sorted := make([]int, len(years))
	copy(sorted, years)
	sort.Ints(sorted)

	alts := make([]string, 0, len(sorted))
	for _, y := range sorted {
		alts = append(alts, fmt.Sprintf("%04d", y))
	}
	return `(?P<year>` + strings.Join(alts, "|") + `)`
}

// monthNameFragment builds a case-insensitive alternation over the month
// tables, full names before abbreviations so longer forms win. Each letter
// becomes an either-case character class, so matching does not depend on
// regexp case-folding flags.
func monthNameFragment(months MonthTable) string {
	alts := make([]string, 0, 24)
	for _, name := range months.Names {
		alts = append(alts, casedLetters(name))
	}
	for _, abbr := range months.Abbreviations {
		alts = append(alts, casedLetters(abbr))
	}
	return strings.Join(alts, "|")
}

// casedLetters turns "Mar" into "[Mm][Aa][Rr]".
func casedLetters(word string) string {
	var b strings.Builder
	for _, r := range word {
		upper := unicode.ToUpper(r)
		lower := unicode.ToLower(r)
		if upper == lower {
			b.WriteString(regexp.QuoteMeta(string(r)))
			continue
		}
		b.WriteString("[")
		b.WriteString(regexp.QuoteMeta(string(upper)))
		b.WriteString(regexp.QuoteMeta(string(lower)))
		b.WriteString("]")
	}
	return b.String()
}

// buildVariants compiles the full ordered pattern set for one run.
// Layout priority is year-first, then day-first, then month-name+year.
// Within a layout, two-digit component forms are tried before bare
// single digits, mirroring the field grammar's alternation order.
//
// Single-digit components carry structural guards in place of lookahead:
// a bare single digit followed by a further numeric component requires a
// non-empty separator, and a bare single digit at the end of the date
// block requires a guardedTail.
func buildVariants(years []int, months MonthTable) ([]*variant, error) {
	if len(years) == 0 {
		return nil, &ExtractError{Type: EmptyYearSet}
	}

	y := yearFragment(years)
	names := monthNameFragment(months)

	// Month forms. Numeric two-digit and name forms start with distinct
	// characters, so they share one alternation without affecting order.
	monthWide := `(?P<month>` + twoDigitMonth + `|` + names + `)`
	monthOne := `(?P<month>` + oneDigitMonth + `)`
	monthTwo := `(?P<month>` + twoDigitMonth + `)`
	monthName := `(?P<month>` + names + `)`

	dayTwo := `(?P<day>` + twoDigitDay + `)`
	dayOne := `(?P<day>` + oneDigitDay + `)`

	specs := []struct {
		layout Layout
		expr   string
	}{
		{LayoutYearFirst, y + optSep + monthWide + optSep + dayTwo + freeTail()},
		{LayoutYearFirst, y + optSep + monthWide + optSep + dayOne + guardedTail()},
		{LayoutYearFirst, y + optSep + monthOne + reqSep + dayTwo + freeTail()},
		{LayoutYearFirst, y + optSep + monthOne + reqSep + dayOne + guardedTail()},
		{LayoutYearFirst, y + optSep + monthWide + freeTail()},
		{LayoutYearFirst, y + optSep + monthOne + guardedTail()},

		{LayoutDayFirst, dayTwo + optSep + monthWide + optSep + y + freeTail()},
		{LayoutDayFirst, dayTwo + optSep + monthOne + reqSep + y + freeTail()},
		{LayoutDayFirst, dayOne + reqSep + monthTwo + optSep + y + freeTail()},
		{LayoutDayFirst, dayOne + reqSep + monthOne + reqSep + y + freeTail()},
		{LayoutDayFirst, dayOne + optSep + monthName + optSep + y + freeTail()},

		{LayoutMonthYear, monthName + optSep + y + freeTail()},
	}

	variants := make([]*variant, 0, len(specs))
	for _, spec := range specs {
		// The prefix is the shortest possible leading text, with one
		// trailing dash or underscore stripped at the boundary. The whole
		// pattern is anchored at both ends of the extension-stripped name.
		full := `^(?P<prefix>.*?)[-_]?` + spec.expr

		re, err := regexp.Compile(full)
		if err != nil {
			return nil, &ExtractError{
				Type:   PatternCompile,
				Detail: err.Error(),
			}
		}

		groups := make(map[string]int)
		for i, name := range re.SubexpNames() {
			if name != "" {
				groups[name] = i
			}
		}

		variants = append(variants, &variant{
			layout: spec.layout,
			re:     re,
			groups: groups,
		})
	}

	return variants, nil
}
