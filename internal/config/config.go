package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"

	"github.com/seralba/devsink/internal/syslog"
)

// Config holds all devsink configuration. Defaults come from DEVSINK_*
// environment variables, resolved once by Load — nothing reads the
// environment after that.
type Config struct {
	Syslog  SyslogConfig
	Policy  PolicyConfig
	Log     LogConfig
	Server  ServerConfig
	Forward ForwardConfig
}

// SyslogConfig holds transport defaults for the send path.
type SyslogConfig struct {
	Target      string `env:"DEVSINK_TARGET" envDefault:"127.0.0.1"`
	Port        int    `env:"DEVSINK_PORT" envDefault:"514"`
	Protocol    string `env:"DEVSINK_PROTOCOL" envDefault:"udp"`
	Framing     string `env:"DEVSINK_FRAMING" envDefault:"octet-counting"`
	MaxLen      int    `env:"DEVSINK_MAX_LENGTH" envDefault:"2048"`
	ClientName  string `env:"DEVSINK_CLIENT_NAME"` // empty = local host name at send time
	PassThrough bool   `env:"DEVSINK_PASS_THROUGH" envDefault:"false"`
}

// PolicyConfig selects the policy store backend.
type PolicyConfig struct {
	Backend     string `env:"DEVSINK_POLICY_BACKEND" envDefault:"file"` // "file" or "registry"
	Path        string `env:"DEVSINK_POLICY_PATH" envDefault:"policy.json"`
	RegistryKey string `env:"DEVSINK_POLICY_REGISTRY_KEY" envDefault:"SOFTWARE\\Devsink\\Policies"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level  string `env:"DEVSINK_LOG_LEVEL" envDefault:"info"`
	Format string `env:"DEVSINK_LOG_FORMAT" envDefault:"console"` // "console" or "json"
}

// ServerConfig holds the forward daemon's admin endpoint settings.
type ServerConfig struct {
	ListenAddress string `env:"DEVSINK_LISTEN_ADDRESS" envDefault:":9615"`
	MetricsPath   string `env:"DEVSINK_METRICS_PATH" envDefault:"/metrics"`
}

// ForwardConfig holds forward-mode settings.
type ForwardConfig struct {
	Component string `env:"DEVSINK_COMPONENT" envDefault:"devsink"`
	Topology  string `env:"DEVSINK_TOPOLOGY"` // path to the YAML sink layout
}

// Load resolves configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(&cfg.Syslog); err != nil {
		return nil, fmt.Errorf("parsing syslog config: %w", err)
	}
	if err := env.Parse(&cfg.Policy); err != nil {
		return nil, fmt.Errorf("parsing policy config: %w", err)
	}
	if err := env.Parse(&cfg.Log); err != nil {
		return nil, fmt.Errorf("parsing log config: %w", err)
	}
	if err := env.Parse(&cfg.Server); err != nil {
		return nil, fmt.Errorf("parsing server config: %w", err)
	}
	if err := env.Parse(&cfg.Forward); err != nil {
		return nil, fmt.Errorf("parsing forward config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints not expressible as env tags.
func (c *Config) Validate() error {
	if c.Syslog.Protocol != "udp" && c.Syslog.Protocol != "tcp" {
		return fmt.Errorf("config: protocol must be udp or tcp, got %q", c.Syslog.Protocol)
	}
	if _, err := syslog.ParseFraming(c.Syslog.Framing); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Syslog.Port < 1 || c.Syslog.Port > 65535 {
		return fmt.Errorf("config: port out of range: %d", c.Syslog.Port)
	}
	if c.Syslog.MaxLen < 0 {
		return fmt.Errorf("config: max length must not be negative: %d", c.Syslog.MaxLen)
	}
	if c.Policy.Backend != "file" && c.Policy.Backend != "registry" {
		return fmt.Errorf("config: policy backend must be file or registry, got %q", c.Policy.Backend)
	}
	return nil
}
