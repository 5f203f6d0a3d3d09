// Package timestamp resolves the fallback instant used when a filename
// carries no recognizable date.
package timestamp

import "time"

// Policy selects which clock value supplies the fallback instant.
type Policy string

const (
	// PolicyEarliest uses the earlier of the file's change and
	// modification times. This is the default.
	PolicyEarliest Policy = "earliest"
	// PolicyLatest uses the later of the two file times.
	PolicyLatest Policy = "latest"
	// PolicyNow ignores file times and uses the current time.
	PolicyNow Policy = "now"
)

// Resolve picks the fallback instant for the given policy.
func Resolve(policy Policy, now, ctime, mtime time.Time) time.Time {
	switch policy {
	case PolicyNow:
		return now
	case PolicyLatest:
		if ctime.After(mtime) {
			return ctime
		}
		return mtime
	default:
		if ctime.Before(mtime) {
			return ctime
		}
		return mtime
	}
}
