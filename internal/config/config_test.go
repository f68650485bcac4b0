package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Model != "meta-llama/Llama-3-8b-chat-hf" {
		t.Errorf("unexpected default model %q", cfg.Model)
	}
	if cfg.MaxTokens != 512 {
		t.Errorf("expected default max_tokens 512, got %d", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("expected default temperature 0.7, got %f", cfg.Temperature)
	}
	if cfg.TopP != 0.9 {
		t.Errorf("expected default top_p 0.9, got %f", cfg.TopP)
	}
	if cfg.Session.Backend != BackendMemory {
		t.Errorf("expected default session backend %q, got %q", BackendMemory, cfg.Session.Backend)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.mudhumeni.yml")

	original := DefaultConfig()
	original.Model = "meta-llama/Llama-3-70b-chat-hf"
	original.DefaultLanguage = "sn"
	original.Port = 9090
	original.Session.Backend = BackendRedis
	original.Session.RedisURL = "redis://localhost:6379/1"
	original.Session.TTL = "24h"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.DefaultLanguage != original.DefaultLanguage {
		t.Errorf("default_language: got %q, want %q", loaded.DefaultLanguage, original.DefaultLanguage)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Session.Backend != original.Session.Backend {
		t.Errorf("session backend: got %q, want %q", loaded.Session.Backend, original.Session.Backend)
	}
	if loaded.Session.RedisURL != original.Session.RedisURL {
		t.Errorf("redis_url: got %q, want %q", loaded.Session.RedisURL, original.Session.RedisURL)
	}
	if loaded.Session.TTL != original.Session.TTL {
		t.Errorf("ttl: got %q, want %q", loaded.Session.TTL, original.Session.TTL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Endpoint != DefaultConfig().Endpoint {
		t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("MUDHUMENI_MODEL", "meta-llama/Llama-3-70b-chat-hf")
	defer os.Unsetenv("MUDHUMENI_MODEL")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Model != "meta-llama/Llama-3-70b-chat-hf" {
		t.Errorf("env override failed: got %q", loaded.Model)
	}
}

func TestLoadEnvOverrideNested(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("MUDHUMENI_SESSION_BACKEND", "redis")
	defer os.Unsetenv("MUDHUMENI_SESSION_BACKEND")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Session.Backend != BackendRedis {
		t.Errorf("nested env override failed: got %q", loaded.Session.Backend)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateEmptyEndpoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Endpoint = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty endpoint")
	}
}

func TestValidateEmptyModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty model")
	}
}

func TestValidateInvalidLanguage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLanguage = "fr"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unsupported language")
	}
}

func TestValidateInvalidBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Session.Backend = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid session backend")
	}
}

func TestValidateRedisRequiresURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Session.Backend = BackendRedis
	cfg.Session.RedisURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for redis backend without url")
	}
}

func TestValidateTemperatureBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Temperature = 3.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range temperature")
	}
}

func TestValidateInvalidPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for port 0")
	}
}

func TestParsedTTL(t *testing.T) {
	tests := []struct {
		ttl     string
		want    time.Duration
		wantErr bool
	}{
		{"0", 0, false},
		{"", 0, false},
		{"30m", 30 * time.Minute, false},
		{"24h", 24 * time.Hour, false},
		{"-1h", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := SessionConfig{TTL: tt.ttl}.ParsedTTL()
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsedTTL(%q): expected error", tt.ttl)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsedTTL(%q): %v", tt.ttl, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsedTTL(%q) = %v, want %v", tt.ttl, got, tt.want)
		}
	}
}
