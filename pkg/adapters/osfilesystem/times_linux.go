//go:build linux

package osfilesystem

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// creationTime reads the birth time with statx(2). Kernels and filesystems
// that don't report STATX_BTIME yield the zero time.
func creationTime(path string, _ os.FileInfo) time.Time {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
}
