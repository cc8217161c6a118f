package ports

import "time"

// DirEntry is an immediate child of a directory.
type DirEntry struct {
	Name string
	// IsDir reports whether the entry is a directory, following symlinks.
	IsDir bool
}

// FileTimes holds the timestamps recorded for a path.
// Created is the zero time when the platform or filesystem doesn't record it.
type FileTimes struct {
	Created  time.Time
	Modified time.Time
}

// Preferred returns the creation time when known, otherwise the modification
// time. ok is false when neither is available.
func (t FileTimes) Preferred() (ts time.Time, ok bool) {
	if !t.Created.IsZero() {
		return t.Created, true
	}
	if !t.Modified.IsZero() {
		return t.Modified, true
	}
	return time.Time{}, false
}

// FileSystem abstracts file system operations.
type FileSystem interface {
	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// ReadDir lists the immediate entries of a directory.
	ReadDir(path string) ([]DirEntry, error)

	// Times returns the creation and modification times of a path.
	Times(path string) (FileTimes, error)

	// Size returns the size of a file in bytes.
	Size(path string) (int64, error)

	// RemoveAll deletes a path and everything below it.
	RemoveAll(path string) error
}
