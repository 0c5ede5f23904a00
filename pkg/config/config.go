// Package config holds the runtime configuration for the normalization
// service: listen address, request limits, default form, and the
// optional Redis result cache.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "30s" or "15m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// RedisConfig configures the optional normalization result cache.
// An empty Addr disables caching entirely.
type RedisConfig struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	TTL      Duration `yaml:"ttl"`
}

// Config is the full service configuration.
type Config struct {
	// ListenAddr is the host:port the HTTP API binds to.
	ListenAddr string `yaml:"listen_addr"`

	// DefaultForm names the normalization form used when a request
	// omits one (nfc, nfd, nfkc, nfkd, fcd).
	DefaultForm string `yaml:"default_form"`

	// MaxTextBytes caps the size of a single request body. Requests
	// past the cap are rejected, not truncated.
	MaxTextBytes int `yaml:"max_text_bytes"`

	// Redis configures the result cache.
	Redis RedisConfig `yaml:"redis"`
}

// NewDefaultConfig returns the configuration used when no YAML file is
// present. The service works out of the box without one.
func NewDefaultConfig() *Config {
	return &Config{
		ListenAddr:   ":8632",
		DefaultForm:  "nfc",
		MaxTextBytes: 1 << 20, // 1 MiB of text per request
		Redis: RedisConfig{
			TTL: Duration(15 * time.Minute),
		},
	}
}

// Load reads the YAML config at path, layered over the defaults.
// A missing file is not an error: the defaults (plus environment
// overrides) keep the service usable without any config files.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	fmt.Printf("[INFO] Loaded config from %s\n", path)
	return cfg, nil
}

// applyEnv lets deployment environments override the file without
// editing it.
func (c *Config) applyEnv() {
	if v := os.Getenv("UNORM_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("UNORM_REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("UNORM_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

func (c *Config) validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if c.MaxTextBytes <= 0 {
		return fmt.Errorf("max_text_bytes must be positive, got %d", c.MaxTextBytes)
	}
	switch c.DefaultForm {
	case "none", "nfd", "nfkd", "nfc", "nfkc", "fcd":
	default:
		return fmt.Errorf("unknown default_form %q", c.DefaultForm)
	}
	return nil
}
