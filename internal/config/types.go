package config

// SessionBackend identifies where per-session state lives.
type SessionBackend string

const (
	BackendMemory SessionBackend = "memory"
	BackendRedis  SessionBackend = "redis"
)

// Config is the top-level mudhumeni configuration, corresponding to
// .mudhumeni.yml. The API key is deliberately not part of the file; it is
// read from the environment (see APIKeyEnvVar).
type Config struct {
	// Remote completion endpoint (OpenAI-compatible chat completions).
	Endpoint string `yaml:"endpoint" koanf:"endpoint"`
	Model    string `yaml:"model" koanf:"model"`

	// Fixed generation parameters.
	MaxTokens   int     `yaml:"max_tokens" koanf:"max_tokens"`
	Temperature float64 `yaml:"temperature" koanf:"temperature"`
	TopP        float64 `yaml:"top_p" koanf:"top_p"`

	// RequestTimeout bounds the single remote attempt, in seconds. Expiry is
	// treated like any other remote failure.
	RequestTimeout int `yaml:"request_timeout" koanf:"request_timeout"`

	// RateLimitRPM caps outbound completion requests per minute. Zero
	// disables the limiter.
	RateLimitRPM int `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`

	// DefaultLanguage is used when a request carries no language tag.
	DefaultLanguage string `yaml:"default_language" koanf:"default_language"`

	Port     int    `yaml:"port" koanf:"port"`
	LogLevel string `yaml:"log_level" koanf:"log_level"`
	LogJSON  bool   `yaml:"log_json" koanf:"log_json"`

	Session SessionConfig `yaml:"session" koanf:"session"`
}

// SessionConfig holds session store settings.
type SessionConfig struct {
	Backend SessionBackend `yaml:"backend" koanf:"backend"`

	// TTL is the idle lifetime of a session ("0" keeps sessions for the
	// process lifetime). Parsed as a Go duration.
	TTL string `yaml:"ttl" koanf:"ttl"`

	// RedisURL configures the redis backend, e.g. redis://localhost:6379/0.
	RedisURL string `yaml:"redis_url" koanf:"redis_url"`
}
