package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .mudhumeni.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to mudhumeni! Let's configure your assistant.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Default language.
	langPrompt := promptui.Select{
		Label: "Default reply language",
		Items: []string{
			"en — English",
			"sn — Shona",
			"nd — Ndebele",
		},
	}
	langIdx, _, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}
	cfg.DefaultLanguage = []string{"en", "sn", "nd"}[langIdx]

	// 2. Session backend.
	backendPrompt := promptui.Select{
		Label: "Session storage backend",
		Items: []string{
			"memory — in-process, lost on restart",
			"redis  — shared, survives restarts",
		},
	}
	backendIdx, _, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend selection: %w", err)
	}
	cfg.Session.Backend = []SessionBackend{BackendMemory, BackendRedis}[backendIdx]

	// 3. Redis URL, only when redis was chosen.
	if cfg.Session.Backend == BackendRedis {
		redisPrompt := promptui.Prompt{
			Label:   "Redis URL",
			Default: "redis://localhost:6379/0",
		}
		redisURL, err := redisPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
		cfg.Session.RedisURL = redisURL
	}

	// 4. Completion endpoint and model.
	endpointPrompt := promptui.Prompt{
		Label:   "Completion API base URL",
		Default: cfg.Endpoint,
	}
	endpoint, err := endpointPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("endpoint: %w", err)
	}
	cfg.Endpoint = endpoint

	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: cfg.Model,
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	cfg.Model = model

	// 5. HTTP port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP listen port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Remind about the API key without it in the file.
	if os.Getenv(APIKeyEnvVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment before starting the server.\n", APIKeyEnvVar)
	}

	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)
	return cfg, nil
}
