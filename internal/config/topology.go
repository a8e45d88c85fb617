package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Topology is the optional YAML sink layout consumed by the forward daemon.
// When no topology file is given, forward falls back to a single syslog sink
// built from the environment defaults.
type Topology struct {
	Sinks []SinkDef `yaml:"sinks"`
}

// SinkDef declares one sink: its registered type name, whether deliveries
// are decoupled through an async buffer, and free-form settings passed to
// the sink builder.
type SinkDef struct {
	Type     string            `yaml:"type"`
	Async    bool              `yaml:"async"`
	Settings map[string]string `yaml:"settings"`
}

// LoadTopology reads, normalizes, and validates a topology file.
func LoadTopology(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("topology: read %s: %w", path, err)
	}
	var t Topology
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("topology: parse %s: %w", path, err)
	}
	t.normalize()
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("topology: %s: %w", path, err)
	}
	return &t, nil
}

// normalize lowercases and trims sink type names.
func (t *Topology) normalize() {
	for i := range t.Sinks {
		t.Sinks[i].Type = strings.ToLower(strings.TrimSpace(t.Sinks[i].Type))
	}
}

// validate rejects empty or typeless layouts. Unknown sink types surface
// later, when the sink registry builds the layout.
func (t *Topology) validate() error {
	if len(t.Sinks) == 0 {
		return fmt.Errorf("no sinks declared")
	}
	for i, s := range t.Sinks {
		if s.Type == "" {
			return fmt.Errorf("sink %d: missing type", i)
		}
	}
	return nil
}
