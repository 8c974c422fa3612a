package keysheet

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Version is the sheet file format version.
const Version = 1

// Store persists key sheets to disk as YAML.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Save writes the sheet, stamping the format version and issue time.
// The file is written owner-readable only, since a sheet is key
// material.
func (s *Store) Save(sheet *Sheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet.Version = Version
	sheet.IssuedAt = time.Now().UTC()

	data, err := yaml.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("marshaling key sheet: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating sheet directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing sheet file: %w", err)
	}
	return nil
}

// Load reads the stored sheet. It returns nil without an error when no
// sheet has been saved yet.
func (s *Store) Load() (*Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading sheet file: %w", err)
	}
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("parsing sheet file: %w", err)
	}
	return &sheet, nil
}

// Clear removes the stored sheet. Clearing a store that has nothing
// saved is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing sheet file: %w", err)
	}
	return nil
}
