// Package progress persists the set of already-translated file paths so an
// interrupted or failed run can be resumed without retranslating anything.
// The on-disk format is a flat JSON array of paths.
package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DefaultFile is the progress file name used when none is configured.
const DefaultFile = "translation_progress.json"

// Store tracks completed file paths and persists them to a JSON file.
// The set only grows; paths are never removed by doctrans itself.
type Store struct {
	path string
	done map[string]struct{}
}

// Load reads the progress file at path, or starts with an empty set when
// the file does not exist yet.
func Load(path string) (*Store, error) {
	s := &Store{path: path, done: make(map[string]struct{})}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read progress file: %w", err)
	}

	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		return nil, fmt.Errorf("failed to parse progress file %s: %w", path, err)
	}
	for _, p := range paths {
		s.done[p] = struct{}{}
	}
	return s, nil
}

// Contains reports whether a path has already been translated.
func (s *Store) Contains(path string) bool {
	_, ok := s.done[path]
	return ok
}

// Add marks a path as translated. It does not persist; call Save.
func (s *Store) Add(path string) {
	s.done[path] = struct{}{}
}

// Len returns the number of completed paths.
func (s *Store) Len() int {
	return len(s.done)
}

// Save writes the whole set to the progress file, sorted for stable diffs.
// The write goes to a temporary file first and is renamed into place so a
// crash mid-write never truncates earlier progress.
func (s *Store) Save() error {
	paths := make([]string, 0, len(s.done))
	for p := range s.done {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	data, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".progress-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp progress file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close progress file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace progress file: %w", err)
	}
	return nil
}
