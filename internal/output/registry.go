package output

import "fmt"

// Builder constructs an Output from its sink settings.
type Builder func(cfg SinkConfig) (Output, error)

var registry = map[string]Builder{}

// Register adds a sink builder under the given type name.
func Register(name string, b Builder) {
	registry[name] = b
}

// Build constructs the sink described by cfg.
func Build(cfg SinkConfig) (Output, error) {
	b, ok := registry[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unknown sink type: %s", cfg.Type)
	}
	return b(cfg)
}

// Sinks returns the names of all registered sink types.
func Sinks() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
