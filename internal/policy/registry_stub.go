//go:build !windows

package policy

// RegistryStore is only available on Windows.
type RegistryStore struct{}

// NewRegistryStore returns ErrNotSupported on non-Windows platforms.
func NewRegistryStore(path string) (*RegistryStore, error) {
	return nil, ErrNotSupported
}

func (s *RegistryStore) Read(key string) ([]byte, error)  { return nil, ErrNotSupported }
func (s *RegistryStore) Write(key string, blob []byte) error { return ErrNotSupported }
func (s *RegistryStore) Keys() ([]string, error)          { return nil, ErrNotSupported }
