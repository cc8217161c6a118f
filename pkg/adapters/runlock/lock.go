// Package runlock provides an advisory file lock that keeps two rendervid
// processes from working on the same output directory at once.
package runlock

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/user/rendervid/pkg/ports"
)

// FileName is the lock file created inside the guarded directory.
const FileName = ".rendervid.lock"

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("runlock: another rendervid run holds the lock")

// Lock implements ports.RunLock with flock(2) / LockFileEx.
type Lock struct {
	path string
	lock *flock.Flock
}

// New creates a lock for the file at path. Nothing is touched until Acquire.
func New(path string) *Lock {
	return &Lock{
		path: path,
		lock: flock.New(path),
	}
}

// InDir creates a lock named FileName inside dir.
func InDir(dir string) *Lock {
	return New(filepath.Join(dir, FileName))
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Acquire takes the lock without blocking.
func (l *Lock) Acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, l.path)
	}
	return nil
}

// Release unlocks. The lock file itself is left in place.
func (l *Lock) Release() error {
	return l.lock.Unlock()
}

var _ ports.RunLock = (*Lock)(nil)
