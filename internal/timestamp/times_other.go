//go:build !linux && !darwin

package timestamp

import (
	"os"
	"time"
)

// FileTimes returns the modification time for both values on platforms
// where a change time is not exposed.
func FileTimes(path string) (ctime, mtime time.Time, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return info.ModTime(), info.ModTime(), nil
}
