package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Lister returns the file names in a directory. It exists so numbering can be
// tested without touching the disk.
type Lister interface {
	List(dir string) ([]string, error)
}

// OSLister lists directories on the local filesystem.
type OSLister struct{}

func (OSLister) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// parseIndex extracts N from prefixNsuffix. N must be all digits.
func parseIndex(name, prefix, suffix string) (int, bool) {
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
		return 0, false
	}
	if len(name) <= len(prefix)+len(suffix) {
		return 0, false
	}
	digits := name[len(prefix) : len(name)-len(suffix)]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// LatestIndex returns the highest index among names matching
// prefix<digits>suffix.
func LatestIndex(names []string, prefix, suffix string) (int, bool) {
	latest, found := 0, false
	for _, name := range names {
		n, ok := parseIndex(name, prefix, suffix)
		if !ok {
			continue
		}
		if !found || n > latest {
			latest, found = n, true
		}
	}
	return latest, found
}

// NextIndex returns one past the highest index in names, or 1 when no name
// matches. Indexes are never reused as long as the files stay in place.
func NextIndex(names []string, prefix, suffix string) int {
	latest, ok := LatestIndex(names, prefix, suffix)
	if !ok {
		return 1
	}
	return latest + 1
}

// IndexedName formats prefix<index>suffix with at least three digits.
func IndexedName(prefix string, index int, suffix string) string {
	return fmt.Sprintf("%s%03d%s", prefix, index, suffix)
}

// CreateIndexed creates the next numbered file in dir. The file is opened
// with O_EXCL so a name taken by another writer is an error, never an
// overwrite.
func CreateIndexed(l Lister, dir, prefix, suffix string) (*os.File, string, error) {
	if l == nil {
		l = OSLister{}
	}
	names, err := l.List(dir)
	if err != nil {
		return nil, "", fmt.Errorf("list %s: %w", dir, err)
	}
	path := filepath.Join(dir, IndexedName(prefix, NextIndex(names, prefix, suffix), suffix))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, "", fmt.Errorf("create %s: %w", path, err)
	}
	return f, path, nil
}
