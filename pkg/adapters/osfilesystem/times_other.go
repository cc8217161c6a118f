//go:build !linux && !darwin && !windows

package osfilesystem

import (
	"os"
	"time"
)

// creationTime is unavailable here; callers fall back to the modification time.
func creationTime(_ string, _ os.FileInfo) time.Time {
	return time.Time{}
}
