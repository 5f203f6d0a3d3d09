//go:build linux

package timestamp

import (
	"time"

	"golang.org/x/sys/unix"
)

// FileTimes returns the change and modification times for path.
func FileTimes(path string) (ctime, mtime time.Time, err error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, time.Time{}, err
	}
	ctime = time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	mtime = time.Unix(st.Mtim.Sec, st.Mtim.Nsec)
	return ctime, mtime, nil
}
