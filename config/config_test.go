package config

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBufferString(yaml)); err != nil {
		t.Fatalf("read config: %v", err)
	}
	return v
}

const providersYAML = `
llm:
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: g-key
      model: gemini-2.5-flash
    - name: openai
      enabled: true
      priority: 2
      api_key: ${TEST_OPENAI_KEY}
      model: gpt-4o-mini
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(newViper(t, providersYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Chat.WindowSize != 10 {
		t.Errorf("expected default window 10, got %d", cfg.Chat.WindowSize)
	}
	if cfg.Chat.Temperature != 0.3 {
		t.Errorf("expected default temperature 0.3, got %v", cfg.Chat.Temperature)
	}
	if cfg.Chat.MaxTokens != 150 {
		t.Errorf("expected default max tokens 150, got %d", cfg.Chat.MaxTokens)
	}
	if cfg.Chat.RequestTimeout != 30*time.Second {
		t.Errorf("expected 30s request timeout, got %v", cfg.Chat.RequestTimeout)
	}
	if cfg.Session.Retention != "summarize" {
		t.Errorf("expected summarize retention, got %q", cfg.Session.Retention)
	}
	if cfg.Session.MaxRetainedTurns != 200 {
		t.Errorf("expected retained cap 200, got %d", cfg.Session.MaxRetainedTurns)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected CORS origins %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_RetentionNormalized(t *testing.T) {
	tests := map[string]string{
		"Summarize":    "summarize",
		"TRUNCATE":     "truncate",
		"  truncate  ": "truncate",
		`""`:           "summarize",
	}
	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			cfg, err := load(newViper(t, providersYAML+"session:\n  retention: "+raw+"\n"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Session.Retention != want {
				t.Errorf("retention = %q, want %q", cfg.Session.Retention, want)
			}
		})
	}
}

func TestLoad_ExpandsProviderKeys(t *testing.T) {
	t.Setenv("TEST_OPENAI_KEY", "sk-from-env")

	cfg, err := load(newViper(t, providersYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(cfg.LLM.Providers))
	}
	if cfg.LLM.Providers[1].APIKey != "sk-from-env" {
		t.Errorf("expected expanded key, got %q", cfg.LLM.Providers[1].APIKey)
	}
}

func TestLoad_OpenAIShortcut(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-shortcut")
	t.Setenv("MODEL_NAME", "gpt-4o-mini")
	t.Setenv("WINDOW_SIZE", "4")

	cfg, err := load(newViper(t, "environment:\n  name: test\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.LLM.Providers) != 1 {
		t.Fatalf("expected 1 synthesized provider, got %d", len(cfg.LLM.Providers))
	}
	p := cfg.LLM.Providers[0]
	if p.Name != "openai" || p.APIKey != "sk-shortcut" || p.Model != "gpt-4o-mini" {
		t.Errorf("unexpected provider %+v", p)
	}
	if cfg.Chat.WindowSize != 4 {
		t.Errorf("expected window 4 from env, got %d", cfg.Chat.WindowSize)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no providers", "environment:\n  name: test\n"},
		{"bad retention", providersYAML + "session:\n  retention: forever\n"},
		{"bad window", providersYAML + "chat:\n  window_size: -1\n"},
		{"negative retained cap", providersYAML + "session:\n  max_retained_turns: -5\n"},
		{"duplicate priority", `
llm:
  providers:
    - {name: a, enabled: true, priority: 1, api_key: k, model: m}
    - {name: b, enabled: true, priority: 1, api_key: k, model: m}
`},
	}

	t.Setenv("OPENAI_API_KEY", "")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(newViper(t, tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_CORSFromEnv(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := load(newViper(t, providersYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected CORS origins %v", cfg.CORS.AllowedOrigins)
	}
}
