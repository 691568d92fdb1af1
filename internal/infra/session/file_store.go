// Package session holds the console's authenticated state and keeps it on
// disk so a restart does not sign the operator out.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"ketalog/internal/domain/service"
	"ketalog/internal/errors"
)

// FileStore persists the session snapshot as a JSON file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed state store at the given path.
func NewFileStore(path string) service.StateStore {
	return &FileStore{path: path}
}

// Load returns the persisted session. A missing or undecodable snapshot is
// treated as signed out, never as an error.
func (s *FileStore) Load() (*service.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read session snapshot")
	}

	var session service.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// Corrupt snapshot. Drop it rather than fail every startup.
		_ = os.Remove(s.path)
		return nil, nil
	}

	if session.Token == "" {
		return nil, nil
	}

	return &session, nil
}

// Save persists the session snapshot. The write goes through a temp file and
// rename so a crash never leaves a half-written snapshot.
func (s *FileStore) Save(session *service.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session snapshot")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrap(err, "create session directory")
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "write session snapshot")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "replace session snapshot")
	}

	return nil
}

// Clear removes the persisted snapshot.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove session snapshot")
	}

	return nil
}
