// Package osfilesystem provides a filesystem implementation using the os package.
package osfilesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/user/rendervid/pkg/ports"
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct{}

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// MkdirAll creates a directory and all parent directories.
func (fsys *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

// Exists checks if a file or directory exists.
func (fsys *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ReadDir lists the immediate entries of a directory in filename order.
// Symlinks are reported as directories when their target is one.
func (fsys *FileSystem) ReadDir(path string) ([]ports.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	result := make([]ports.DirEntry, 0, len(entries))
	for _, e := range entries {
		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			if fi, err := os.Stat(filepath.Join(path, e.Name())); err == nil {
				isDir = fi.IsDir()
			}
		}
		result = append(result, ports.DirEntry{Name: e.Name(), IsDir: isDir})
	}
	return result, nil
}

// Times returns the creation and modification times of a path.
// Created is left zero where the platform doesn't expose a birth time.
func (fsys *FileSystem) Times(path string) (ports.FileTimes, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return ports.FileTimes{}, err
	}
	return ports.FileTimes{
		Created:  creationTime(path, fi),
		Modified: fi.ModTime(),
	}, nil
}

// Size returns the size of a file in bytes.
func (fsys *FileSystem) Size(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// RemoveAll deletes a path and everything below it.
func (fsys *FileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
