package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (MUDHUMENI_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: MUDHUMENI_MODEL -> model, etc.
	// Nested keys use underscores: MUDHUMENI_SESSION_BACKEND -> session.backend.
	if err := k.Load(env.Provider("MUDHUMENI_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "MUDHUMENI_"))
		if rest, ok := strings.CutPrefix(key, "session_"); ok {
			return "session." + rest
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validBackends is the set of recognized session backend values.
var validBackends = map[SessionBackend]bool{
	BackendMemory: true,
	BackendRedis:  true,
}

// validLanguages is the set of recognized default language tags.
var validLanguages = map[string]bool{
	"en": true,
	"sn": true,
	"nd": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	if c.TopP < 0 || c.TopP > 1 {
		return fmt.Errorf("top_p must be between 0 and 1")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	if c.RateLimitRPM < 0 {
		return fmt.Errorf("rate_limit_rpm must be non-negative")
	}

	if !validLanguages[c.DefaultLanguage] {
		return fmt.Errorf("invalid default_language %q: must be one of en, sn, nd", c.DefaultLanguage)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if !validBackends[c.Session.Backend] {
		return fmt.Errorf("invalid session backend %q: must be one of memory, redis", c.Session.Backend)
	}
	if c.Session.Backend == BackendRedis && c.Session.RedisURL == "" {
		return fmt.Errorf("session.redis_url is required when session backend is redis")
	}
	if _, err := c.Session.ParsedTTL(); err != nil {
		return err
	}

	return nil
}

// ParsedTTL returns the session TTL as a duration. A value of "0" or an
// empty string means sessions live for the lifetime of the process.
func (s SessionConfig) ParsedTTL() (time.Duration, error) {
	if s.TTL == "" || s.TTL == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid session ttl %q: %w", s.TTL, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("session ttl must be non-negative")
	}
	return d, nil
}

// APIKeyEnvVar is the environment variable the completion API key is
// read from. It is never stored in the config file.
const APIKeyEnvVar = "MUDHUMENI_API_KEY"
