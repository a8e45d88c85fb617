package output

import (
	"context"

	"github.com/seralba/devsink/internal/model"
)

// Output defines the interface for message destinations.
type Output interface {
	Write(ctx context.Context, msg model.Message) error
	Close() error
}

// SinkConfig holds the type name and free-form settings for one sink, as
// declared in the forward topology.
type SinkConfig struct {
	Type     string
	Settings map[string]string
}

// Setting returns the named setting, or fallback when absent or empty.
func (c SinkConfig) Setting(key, fallback string) string {
	if v := c.Settings[key]; v != "" {
		return v
	}
	return fallback
}
