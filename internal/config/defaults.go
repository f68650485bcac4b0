package config

// DefaultConfigFile is the conventional config file name.
const DefaultConfigFile = ".mudhumeni.yml"

// DefaultConfig returns a Config with sensible defaults: the hosted Llama 3
// chat endpoint the assistant was built against, and in-process sessions.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:        "https://api.together.xyz/v1",
		Model:           "meta-llama/Llama-3-8b-chat-hf",
		MaxTokens:       512,
		Temperature:     0.7,
		TopP:            0.9,
		RequestTimeout:  30,
		RateLimitRPM:    0,
		DefaultLanguage: "en",
		Port:            8080,
		LogLevel:        "info",
		Session: SessionConfig{
			Backend: BackendMemory,
			TTL:     "0",
		},
	}
}
