package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
		Embedding: EmbeddingConfig{
			APIKey: "test-key",
		},
		Completion: CompletionConfig{
			APIKey: "test-key",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "embedding key",
			mutate: func(c *Config) { c.Embedding.APIKey = "" },
			want:   "embedding.api_key is required",
		},
		{
			name:   "completion key",
			mutate: func(c *Config) { c.Completion.APIKey = "" },
			want:   "completion.api_key is required",
		},
		{
			name:   "database addrs",
			mutate: func(c *Config) { c.Database.Addrs = nil },
			want:   "database.addrs is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() != tt.want {
				t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), tt.want)
			}
		})
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for port 0")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.Classifier.Threshold != 0.5 {
		t.Errorf("threshold = %v, want 0.5", cfg.Classifier.Threshold)
	}
	if cfg.Classifier.Candidates != 3 {
		t.Errorf("candidates = %d, want 3", cfg.Classifier.Candidates)
	}
	if cfg.Embedding.Model != "text-embedding-3-small" {
		t.Errorf("embedding model = %q", cfg.Embedding.Model)
	}
	if cfg.Embedding.Dimensions != 1536 {
		t.Errorf("dimensions = %d, want 1536", cfg.Embedding.Dimensions)
	}
	if cfg.Completion.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("completion base url = %q", cfg.Completion.BaseURL)
	}
	if cfg.Storage.KeyPrefix != "schedparse:" {
		t.Errorf("key prefix = %q", cfg.Storage.KeyPrefix)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("SCHEDPARSE_TEST_KEY", "sk-123")

	in := []byte("api_key: ${SCHEDPARSE_TEST_KEY}\nbase_url: ${SCHEDPARSE_TEST_URL:-https://example.com/v1}\n")
	out := string(expandEnvVars(in))

	if !strings.Contains(out, "sk-123") {
		t.Errorf("env var not expanded: %s", out)
	}
	if !strings.Contains(out, "https://example.com/v1") {
		t.Errorf("default not applied: %s", out)
	}
}
