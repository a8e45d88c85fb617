//go:build windows

package policy

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// RegistryStore keeps policy blobs as string values under a key below
// HKEY_LOCAL_MACHINE. The key is created on first write.
type RegistryStore struct {
	root registry.Key
	path string
}

// NewRegistryStore creates a store rooted at HKLM\path, e.g.
// `SOFTWARE\Devsink\Policies`.
func NewRegistryStore(path string) (*RegistryStore, error) {
	return &RegistryStore{root: registry.LOCAL_MACHINE, path: path}, nil
}

// Read returns the blob stored as the named value, or ErrNotFound.
func (s *RegistryStore) Read(key string) ([]byte, error) {
	k, err := registry.OpenKey(s.root, s.path, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("policy: open %s: %w", s.path, err)
	}
	defer k.Close()

	v, _, err := k.GetStringValue(key)
	if errors.Is(err, registry.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("policy: read %s\\%s: %w", s.path, key, err)
	}
	return []byte(v), nil
}

// Write stores blob as the named string value, creating the key if needed.
func (s *RegistryStore) Write(key string, blob []byte) error {
	k, _, err := registry.CreateKey(s.root, s.path, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("policy: create %s: %w", s.path, err)
	}
	defer k.Close()

	if err := k.SetStringValue(key, string(blob)); err != nil {
		return fmt.Errorf("policy: write %s\\%s: %w", s.path, key, err)
	}
	return nil
}

// Keys lists every value name under the key, sorted by the registry's order.
func (s *RegistryStore) Keys() ([]string, error) {
	k, err := registry.OpenKey(s.root, s.path, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("policy: open %s: %w", s.path, err)
	}
	defer k.Close()
	return k.ReadValueNames(-1)
}
