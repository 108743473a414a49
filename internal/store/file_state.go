package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"decoder/internal/domain"
)

const (
	// StateFilename is the default file name of the persisted state.
	StateFilename = "dictionary.json"
	// SealedStateFilename is the default file name when a passphrase is set.
	SealedStateFilename = "dictionary.json.enc"
)

// FileStateStore persists the dictionary state as a single file.
type FileStateStore struct {
	path       string
	passphrase string
	mu         sync.Mutex
}

// NewFileStateStore returns a plain JSON store at path.
func NewFileStateStore(path string) *FileStateStore {
	return &FileStateStore{path: path}
}

// NewSealedFileStateStore returns a store at path whose content is encrypted
// with passphrase.
func NewSealedFileStateStore(path, passphrase string) *FileStateStore {
	return &FileStateStore{path: path, passphrase: passphrase}
}

// Path returns the backing file path.
func (s *FileStateStore) Path() string { return s.path }

// LoadState reads the state. A missing file is the first run and yields an
// empty state.
func (s *FileStateStore) LoadState(ctx context.Context) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return domain.State{}, err
	}
	if b == nil {
		return normalizeState(domain.State{}), nil
	}
	if s.passphrase != "" {
		if b, err = open(s.passphrase, b); err != nil {
			return domain.State{}, err
		}
	}
	var st domain.State
	if err := json.Unmarshal(b, &st); err != nil {
		return domain.State{}, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return normalizeState(st), nil
}

// SaveState replaces the whole persisted state.
func (s *FileStateStore) SaveState(ctx context.Context, st domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := marshalJSON(normalizeState(st))
	if err != nil {
		return err
	}
	if s.passphrase != "" {
		if b, err = seal(s.passphrase, b); err != nil {
			return err
		}
	}
	return WriteFileAtomic(s.path, b, 0o600)
}

// normalizeState replaces nil records with their empty defaults.
func normalizeState(st domain.State) domain.State {
	if st.UserDict == nil {
		st.UserDict = domain.Mapping{}
	}
	if st.DeletedKeys == nil {
		st.DeletedKeys = []string{}
	}
	return st
}

// Compile-time assertion that FileStateStore implements domain.StateStore.
var _ domain.StateStore = (*FileStateStore)(nil)
