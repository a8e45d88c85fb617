package policy

import "errors"

// Configurator toggles managed feature policies in a Store. Enabling or
// disabling a feature marks the store managed and locks the feature against
// user edits; Release hands control back.
type Configurator struct {
	store Store
}

// NewConfigurator creates a Configurator over the given store.
func NewConfigurator(s Store) *Configurator {
	return &Configurator{store: s}
}

// Enable forces the feature on: enabled, default 1, user edits locked.
func (c *Configurator) Enable(key string) error {
	if err := WriteFeature(c.store, key, Feature{AllowEdit: false, Default: 1, Enabled: true}); err != nil {
		return err
	}
	return WriteManaged(c.store, true)
}

// Disable forces the feature off: disabled, default 0, user edits locked.
func (c *Configurator) Disable(key string) error {
	if err := WriteFeature(c.store, key, Feature{AllowEdit: false, Default: 0, Enabled: false}); err != nil {
		return err
	}
	return WriteManaged(c.store, true)
}

// Release unlocks the feature for user edits, keeping its current state.
// A feature that was never written is left absent.
func (c *Configurator) Release(key string) error {
	f, err := ReadFeature(c.store, key)
	if errors.Is(err, ErrNotFound) {
		return WriteManaged(c.store, false)
	}
	if err != nil {
		return err
	}
	f.AllowEdit = true
	if err := WriteFeature(c.store, key, f); err != nil {
		return err
	}
	return WriteManaged(c.store, false)
}

// Status reports the feature blob and the global managed flag.
func (c *Configurator) Status(key string) (Feature, bool, error) {
	f, err := ReadFeature(c.store, key)
	if err != nil {
		return Feature{}, false, err
	}
	managed, err := ReadManaged(c.store)
	if err != nil {
		return Feature{}, false, err
	}
	return f, managed, nil
}
