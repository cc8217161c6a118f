// Package selector finds the newest render directory under a root directory.
package selector

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/user/rendervid/pkg/adapters/logger"
	"github.com/user/rendervid/pkg/ports"
)

// Prefix is the name prefix a directory needs to be considered.
const Prefix = "render"

// ErrNotFound is returned when the root is missing or holds no render directory.
var ErrNotFound = errors.New("selector: not found")

// Candidate is a render directory with the timestamp used to rank it.
type Candidate struct {
	Path      string
	Name      string
	Timestamp time.Time
}

// Selector picks the latest render directory.
type Selector struct {
	fs  ports.FileSystem
	log ports.Logger
}

// New creates a Selector. A nil logger discards messages.
func New(fs ports.FileSystem, log ports.Logger) *Selector {
	if log == nil {
		log = logger.NewNoop()
	}
	return &Selector{fs: fs, log: log}
}

// FindLatest returns the immediate subdirectory of root whose name starts
// with Prefix and whose creation time (or modification time, where creation
// time is unavailable) is the latest. Equal timestamps keep the entry that
// was listed first. Entries without a readable timestamp are skipped.
func (s *Selector) FindLatest(root string) (Candidate, error) {
	exists, err := s.fs.Exists(root)
	if err != nil {
		return Candidate{}, fmt.Errorf("stat %s: %w", root, err)
	}
	if !exists {
		return Candidate{}, fmt.Errorf("%w: directory not found: %s", ErrNotFound, root)
	}

	s.log.Debug("Scanning %s for render directories", root)
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return Candidate{}, fmt.Errorf("read %s: %w", root, err)
	}

	var (
		best  Candidate
		found bool
		count int
	)
	for _, entry := range entries {
		if !entry.IsDir || !strings.HasPrefix(entry.Name, Prefix) {
			continue
		}

		path := filepath.Join(root, entry.Name)
		times, err := s.fs.Times(path)
		if err != nil {
			s.log.Debug("Skipping %s: no readable timestamp", path)
			continue
		}
		ts, ok := times.Preferred()
		if !ok {
			s.log.Debug("Skipping %s: no readable timestamp", path)
			continue
		}

		count++
		s.log.Debug("Candidate %s (%s)", entry.Name, ts.Format(time.RFC3339Nano))
		if !found || ts.After(best.Timestamp) {
			best = Candidate{Path: path, Name: entry.Name, Timestamp: ts}
			found = true
		}
	}

	if !found {
		return Candidate{}, fmt.Errorf("%w: no render directories found in %s", ErrNotFound, root)
	}

	s.log.Debug("Selected %s from %d candidates", best.Name, count)
	return best, nil
}

// FindLatest is a convenience wrapper around Selector.FindLatest.
func FindLatest(fs ports.FileSystem, root string) (Candidate, error) {
	return New(fs, nil).FindLatest(root)
}
