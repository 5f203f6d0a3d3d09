package orchestrator

import (
	"fmt"
	"strings"
	"time"
)

// Summary aggregates the outcome of one run.
type Summary struct {
	Renamed     int
	WouldRename int
	Unchanged   int
	Declined    int
	Skipped     int
	Failed      int

	Duration   time.Duration
	Results    []Result
	ScanErrors []error
}

func (s *Summary) add(result Result) {
	s.Results = append(s.Results, result)
	switch result.Status {
	case StatusRenamed:
		s.Renamed++
	case StatusWouldRename:
		s.WouldRename++
	case StatusUnchanged:
		s.Unchanged++
	case StatusDeclined:
		s.Declined++
	case StatusFailed:
		s.Failed++
	}
}

// Total returns the number of entries processed.
func (s *Summary) Total() int {
	return len(s.Results) + s.Skipped
}

// HasErrors reports whether any entry failed or any path could not be
// scanned.
func (s *Summary) HasErrors() bool {
	return s.Failed > 0 || len(s.ScanErrors) > 0
}

// String renders a one-line run report.
func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Processed %d entries in %v:", s.Total(), s.Duration.Round(time.Millisecond))
	if s.WouldRename > 0 {
		fmt.Fprintf(&b, " %d would be renamed,", s.WouldRename)
	} else {
		fmt.Fprintf(&b, " %d renamed,", s.Renamed)
	}
	fmt.Fprintf(&b, " %d unchanged", s.Unchanged)
	if s.Declined > 0 {
		fmt.Fprintf(&b, ", %d declined", s.Declined)
	}
	if s.Skipped > 0 {
		fmt.Fprintf(&b, ", %d skipped", s.Skipped)
	}
	if s.Failed > 0 {
		fmt.Fprintf(&b, ", %d failed", s.Failed)
	}
	if len(s.ScanErrors) > 0 {
		fmt.Fprintf(&b, ", %d scan errors", len(s.ScanErrors))
	}
	return b.String()
}
