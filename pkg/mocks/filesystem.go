package mocks

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/user/rendervid/pkg/ports"
)

// FileSystem is an in-memory implementation of ports.FileSystem.
// ReadDir lists children in the order they were added.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]ports.FileTimes
	order []string

	MkdirAllFunc  func(path string) error
	ExistsFunc    func(path string) (bool, error)
	ReadDirFunc   func(path string) ([]ports.DirEntry, error)
	TimesFunc     func(path string) (ports.FileTimes, error)
	SizeFunc      func(path string) (int64, error)
	RemoveAllFunc func(path string) error

	// Recorded calls for verification
	MkdirAllCalls  []string
	RemoveAllCalls []string
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]ports.FileTimes),
	}
}

// AddDir registers a directory with the given timestamps.
func (m *FileSystem) AddDir(path string, times ports.FileTimes) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if _, ok := m.dirs[path]; !ok {
		m.order = append(m.order, path)
	}
	m.dirs[path] = times
}

// AddFile registers a file.
func (m *FileSystem) AddFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if _, ok := m.files[path]; !ok {
		m.order = append(m.order, path)
	}
	m.files[path] = data
}

func (m *FileSystem) MkdirAll(path string) error {
	m.mu.Lock()
	m.MkdirAllCalls = append(m.MkdirAllCalls, path)
	m.mu.Unlock()
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		if _, ok := m.dirs[p]; !ok {
			m.dirs[p] = ports.FileTimes{}
			m.order = append(m.order, p)
		}
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}
	return nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	path = filepath.Clean(path)
	if _, ok := m.files[path]; ok {
		return true, nil
	}
	if _, ok := m.dirs[path]; ok {
		return true, nil
	}
	return false, nil
}

func (m *FileSystem) ReadDir(path string) ([]ports.DirEntry, error) {
	if m.ReadDirFunc != nil {
		return m.ReadDirFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	path = filepath.Clean(path)
	if _, ok := m.dirs[path]; !ok {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}
	var entries []ports.DirEntry
	for _, p := range m.order {
		if p == path || filepath.Dir(p) != path {
			continue
		}
		_, isDir := m.dirs[p]
		entries = append(entries, ports.DirEntry{Name: filepath.Base(p), IsDir: isDir})
	}
	return entries, nil
}

func (m *FileSystem) Times(path string) (ports.FileTimes, error) {
	if m.TimesFunc != nil {
		return m.TimesFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	path = filepath.Clean(path)
	if times, ok := m.dirs[path]; ok {
		return times, nil
	}
	if _, ok := m.files[path]; ok {
		return ports.FileTimes{}, nil
	}
	return ports.FileTimes{}, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *FileSystem) Size(path string) (int64, error) {
	if m.SizeFunc != nil {
		return m.SizeFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[filepath.Clean(path)]; ok {
		return int64(len(data)), nil
	}
	return 0, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *FileSystem) RemoveAll(path string) error {
	m.mu.Lock()
	m.RemoveAllCalls = append(m.RemoveAllCalls, path)
	m.mu.Unlock()
	if m.RemoveAllFunc != nil {
		return m.RemoveAllFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	prefix := path + string(filepath.Separator)
	kept := m.order[:0]
	for _, p := range m.order {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.files, p)
			delete(m.dirs, p)
			continue
		}
		kept = append(kept, p)
	}
	m.order = kept
	return nil
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filepath.Clean(path)]
	return data, ok
}

var _ ports.FileSystem = (*FileSystem)(nil)
