package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"channel-finance-assistant/internal/session"
)

// ErrInvalidConfig marks configuration problems that must stop the process at startup.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Assistant specifics
	Chat     ChatConfig
	Session  SessionConfig
	Telegram TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port      int
	Mode      string
	StaticDir string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	ChatLogDir   string // daily chat transcript files, empty disables
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
}

// ChatConfig drives the conversation orchestrator.
type ChatConfig struct {
	SystemPrompt       string
	Temperature        float64
	MaxTokens          int
	WindowSize         int // exchanges kept verbatim; 2*WindowSize turns
	RequestTimeout     time.Duration
	SummaryTimeout     time.Duration
	SummaryTemperature float64
	SummaryMaxTokens   int
}

type SessionConfig struct {
	Retention        string // "summarize" or "truncate", any case
	MaxRetainedTurns int    // hard cap on stored turns under summarize
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	NgrokAPIURL string // local ngrok API used to discover the public URL when WebhookURL is empty
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

// load builds a Config from an already populated viper instance.
func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.StaticDir = v.GetString("http_server.static_dir")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.ChatLogDir = v.GetString("logger.chat_log_dir")

	cfg.CORS.AllowedOrigins = getList(v, "cors.allowed_origins")
	if origins := v.GetString("cors_origins"); origins != "" {
		cfg.CORS.AllowedOrigins = splitList(origins)
	}

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")

	// Chat
	cfg.Chat.SystemPrompt = v.GetString("chat.system_prompt")
	if prompt := v.GetString("system_prompt"); prompt != "" {
		cfg.Chat.SystemPrompt = prompt
	}
	cfg.Chat.Temperature = v.GetFloat64("chat.temperature")
	if v.IsSet("temperature") {
		cfg.Chat.Temperature = v.GetFloat64("temperature")
	}
	cfg.Chat.MaxTokens = v.GetInt("chat.max_tokens")
	if maxTokens := v.GetInt("max_tokens"); maxTokens != 0 {
		cfg.Chat.MaxTokens = maxTokens
	}
	cfg.Chat.WindowSize = v.GetInt("chat.window_size")
	if window := v.GetInt("window_size"); window != 0 {
		cfg.Chat.WindowSize = window
	}
	cfg.Chat.RequestTimeout = v.GetDuration("chat.request_timeout")
	cfg.Chat.SummaryTimeout = v.GetDuration("chat.summary_timeout")
	cfg.Chat.SummaryTemperature = v.GetFloat64("chat.summary_temperature")
	cfg.Chat.SummaryMaxTokens = v.GetInt("chat.summary_max_tokens")

	cfg.Session.Retention = v.GetString("session.retention")
	cfg.Session.MaxRetainedTurns = v.GetInt("session.max_retained_turns")

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPIURL = v.GetString("telegram.ngrok_api_url")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Single-provider shortcut: OPENAI_API_KEY + MODEL_NAME.
	if len(cfg.LLM.Providers) == 0 {
		if key := v.GetString("openai_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "openai",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    v.GetString("model_name"),
			})
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)
	v.SetDefault("rate_limit.burst", 10)

	// Chat defaults
	v.SetDefault("chat.temperature", 0.3)
	v.SetDefault("chat.max_tokens", 150)
	v.SetDefault("chat.window_size", 10)
	v.SetDefault("chat.request_timeout", "30s")
	v.SetDefault("chat.summary_timeout", "15s")
	v.SetDefault("chat.summary_temperature", 0.0)
	v.SetDefault("chat.summary_max_tokens", 256)
	v.SetDefault("session.retention", "summarize")
	v.SetDefault("session.max_retained_turns", 200)
	v.SetDefault("model_name", "gpt-3.5-turbo")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

func validate(cfg *Config) error {
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Chat.WindowSize < 1 {
		return fmt.Errorf("%w: chat.window_size must be at least 1, got %d", ErrInvalidConfig, cfg.Chat.WindowSize)
	}
	retention, err := session.ParseRetention(cfg.Session.Retention)
	if err != nil {
		return fmt.Errorf("%w: session.retention: %v", ErrInvalidConfig, err)
	}
	cfg.Session.Retention = string(retention)
	if cfg.Session.MaxRetainedTurns < 0 {
		return fmt.Errorf("%w: session.max_retained_turns must not be negative", ErrInvalidConfig)
	}
	if cfg.Chat.RequestTimeout <= 0 {
		return fmt.Errorf("%w: chat.request_timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set OPENAI_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true

		if provider.APIKey == "" {
			return fmt.Errorf("provider %s: api_key is required", provider.Name)
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return ""
}

// getList reads a key that may be a YAML list or a comma separated string (env).
func getList(v *viper.Viper, key string) []string {
	if items, ok := v.Get(key).([]interface{}); ok {
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	}
	return splitList(v.GetString(key))
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
