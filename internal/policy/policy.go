package policy

import (
	"encoding/json"
	"errors"
	"fmt"
)

// managedKey is the reserved store key holding the global managed flag.
const managedKey = "managed"

var (
	// ErrNotFound is returned when a policy key has no stored blob.
	ErrNotFound = errors.New("policy: key not found")

	// ErrNotSupported is returned when a store backend is unavailable on
	// this platform.
	ErrNotSupported = errors.New("policy: store backend not supported on this platform")
)

// Feature is the policy blob stored per feature key.
type Feature struct {
	AllowEdit bool `json:"allowEdit"`
	Default   int  `json:"default"` // state applied when unmanaged: 0 or 1
	Enabled   bool `json:"isEnabled"`
}

// Set is a full policy snapshot: the global managed flag plus per-feature blobs.
type Set struct {
	Managed  bool               `json:"managed"`
	Features map[string]Feature `json:"features"`
}

// Store is a flat key/value policy blob store.
type Store interface {
	// Read returns the blob stored under key, or ErrNotFound when absent.
	Read(key string) ([]byte, error)
	// Write stores blob under key, replacing any existing value.
	Write(key string, blob []byte) error
	// Keys lists every stored key, sorted.
	Keys() ([]string, error)
}

// ValidationError reports a malformed policy blob. Always fatal to the call —
// no default value is substituted.
type ValidationError struct {
	Key string // feature key, or backing file path for container-level damage
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("policy: malformed blob for %s: %v", e.Key, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ReadFeature reads and decodes the feature blob stored under key.
func ReadFeature(s Store, key string) (Feature, error) {
	blob, err := s.Read(key)
	if err != nil {
		return Feature{}, err
	}
	var f Feature
	if err := json.Unmarshal(blob, &f); err != nil {
		return Feature{}, &ValidationError{Key: key, Err: err}
	}
	if f.Default != 0 && f.Default != 1 {
		return Feature{}, &ValidationError{Key: key, Err: fmt.Errorf("default must be 0 or 1, got %d", f.Default)}
	}
	return f, nil
}

// WriteFeature encodes and stores the feature blob under key.
func WriteFeature(s Store, key string, f Feature) error {
	if f.Default != 0 && f.Default != 1 {
		return &ValidationError{Key: key, Err: fmt.Errorf("default must be 0 or 1, got %d", f.Default)}
	}
	blob, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("policy: encode %s: %w", key, err)
	}
	return s.Write(key, blob)
}

// ReadManaged reads the global managed flag. Absent means unmanaged.
func ReadManaged(s Store) (bool, error) {
	blob, err := s.Read(managedKey)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var managed bool
	if err := json.Unmarshal(blob, &managed); err != nil {
		return false, &ValidationError{Key: managedKey, Err: err}
	}
	return managed, nil
}

// WriteManaged stores the global managed flag.
func WriteManaged(s Store, managed bool) error {
	blob, _ := json.Marshal(managed)
	return s.Write(managedKey, blob)
}

// ReadSet assembles the full policy snapshot from a store.
func ReadSet(s Store) (Set, error) {
	managed, err := ReadManaged(s)
	if err != nil {
		return Set{}, err
	}
	keys, err := s.Keys()
	if err != nil {
		return Set{}, err
	}
	set := Set{Managed: managed, Features: make(map[string]Feature)}
	for _, key := range keys {
		if key == managedKey {
			continue
		}
		f, err := ReadFeature(s, key)
		if err != nil {
			return Set{}, err
		}
		set.Features[key] = f
	}
	return set, nil
}
