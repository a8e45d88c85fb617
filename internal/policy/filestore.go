package policy

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

// FileStore persists policy blobs as a single JSON object on disk,
// key → raw blob. Every write rewrites the whole file; policy sets are a
// handful of keys, not a database.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the JSON file at path. The file is
// created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read returns the blob stored under key, or ErrNotFound.
func (s *FileStore) Read(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return nil, err
	}
	blob, ok := m[key]
	if !ok {
		return nil, ErrNotFound
	}
	return blob, nil
}

// Write stores blob under key.
func (s *FileStore) Write(key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return err
	}
	m[key] = json.RawMessage(blob)
	return s.save(m)
}

// Keys lists every stored key, sorted.
func (s *FileStore) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// load reads the backing file. A missing file is an empty store.
func (s *FileStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("policy: read %s: %w", s.path, err)
	}
	m := map[string]json.RawMessage{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, &ValidationError{Key: s.path, Err: err}
		}
	}
	return m, nil
}

// save rewrites the backing file via a temp file and rename, so a crashed
// write never leaves a half-written store behind.
func (s *FileStore) save(m map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("policy: encode %s: %w", s.path, err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("policy: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("policy: rename %s: %w", tmp, err)
	}
	return nil
}
