// Package store provides the client application state container with
// durable single-key persistence and fail-fast provisioning scope.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// StateKey is the fixed logical key the state snapshot is persisted under.
const StateKey = "jobapplier_state"

// Storage is the durable client storage a Store persists its snapshot to.
// Absence of a stored value is a valid empty state, reported as (nil, nil).
type Storage interface {
	// Load returns the stored snapshot bytes, or (nil, nil) when nothing
	// has been stored yet.
	Load() ([]byte, error)
	// Store overwrites the snapshot with the given bytes.
	Store(data []byte) error
	// Erase removes the snapshot entirely.
	Erase() error
}

// FileStorage keeps the snapshot as a single JSON file under a directory,
// the local-disk analogue of browser storage.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage rooted at dir. The directory is
// created if it does not exist.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStorage{path: filepath.Join(dir, StateKey+".json")}, nil
}

// Load reads the snapshot file. A missing file is a valid empty state.
func (f *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	return data, nil
}

// Store overwrites the snapshot file.
func (f *FileStorage) Store(data []byte) error {
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Erase removes the snapshot file. Erasing an absent snapshot is not an error.
func (f *FileStorage) Erase() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}

// MemStorage is an in-memory Storage used by tests and ephemeral sessions.
type MemStorage struct {
	data []byte
	set  bool
}

// NewMemStorage creates an empty MemStorage.
func NewMemStorage() *MemStorage {
	return &MemStorage{}
}

// Seed pre-populates the storage with raw bytes, simulating a prior session.
func (m *MemStorage) Seed(data []byte) {
	m.data = append([]byte(nil), data...)
	m.set = true
}

// Load returns the stored bytes, or (nil, nil) when empty.
func (m *MemStorage) Load() ([]byte, error) {
	if !m.set {
		return nil, nil
	}
	return append([]byte(nil), m.data...), nil
}

// Store overwrites the stored bytes.
func (m *MemStorage) Store(data []byte) error {
	m.data = append([]byte(nil), data...)
	m.set = true
	return nil
}

// Erase clears the stored bytes.
func (m *MemStorage) Erase() error {
	m.data = nil
	m.set = false
	return nil
}
