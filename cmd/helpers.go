package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/mudhumeni-ai/server/internal/advisor"
	"github.com/mudhumeni-ai/server/internal/config"
	"github.com/mudhumeni-ai/server/internal/knowledge"
	"github.com/mudhumeni-ai/server/internal/llm"
	"github.com/mudhumeni-ai/server/internal/logx"
	"github.com/mudhumeni-ai/server/internal/session"
)

// loadConfig loads .env, then the config file, and validates the result.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `mudhumeni init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logx.Init(level, cfg.LogJSON)

	return cfg, nil
}

// buildProvider creates the completion provider, wrapped with a rate
// limiter when one is configured. A missing API key is not an error here;
// requests will fail and the assistant falls back to local knowledge.
func buildProvider(cfg *config.Config) llm.Provider {
	apiKey := os.Getenv(config.APIKeyEnvVar)
	if apiKey == "" {
		logx.Warn().Str("env", config.APIKeyEnvVar).Msg("api key not set, remote replies will fall back")
	}

	var provider llm.Provider = llm.NewCompletionsProvider(apiKey, cfg.Endpoint, cfg.Model)
	if cfg.RateLimitRPM > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.RateLimitRPM)
	}
	return provider
}

// buildStore creates the session store named by the config.
func buildStore(cfg *config.Config) (session.Store, func(), error) {
	ttl, err := cfg.Session.ParsedTTL()
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Session.Backend {
	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.Session.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing redis url: %w", err)
		}
		rdb := redis.NewClient(opts)
		store := session.NewRedisStore(rdb, sessionTurnWindow, ttl)
		return store, func() { rdb.Close() }, nil
	default:
		store := session.NewMemoryStore(sessionTurnWindow, ttl)
		return store, store.Close, nil
	}
}

// sessionTurnWindow caps how many turns a session retains.
const sessionTurnWindow = 10

// buildService assembles the advisory service from config.
func buildService(cfg *config.Config) (*advisor.Service, func(), error) {
	store, closeStore, err := buildStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	composer := advisor.NewComposer(knowledge.MustLoad())
	svc := advisor.NewService(store, buildProvider(cfg), composer, advisor.Options{
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		Timeout:     time.Duration(cfg.RequestTimeout) * time.Second,
	})
	return svc, closeStore, nil
}
