//go:build darwin

package osfilesystem

import (
	"os"
	"syscall"
	"time"
)

func creationTime(_ string, fi os.FileInfo) time.Time {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}
	}
	return time.Unix(st.Birthtimespec.Unix())
}
