package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"tripplanner/pkg/utils"
)

type Config struct {
	Server     ServerConfig
	Completion CompletionSettings
	Session    SessionConfig

	AssetDir string `env:"ASSET_DIR" envDefault:"assets"`

	// TransportLinks maps a transportation mode to its helper link,
	// e.g. TRANSPORT_LINKS="Car=https://...,Walking=https://...".
	TransportLinks map[string]string `env:"TRANSPORT_LINKS" envKeyValSeparator:"="`
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type CompletionSettings struct {
	Provider    string  `env:"COMPLETION_PROVIDER" envDefault:"gemini"`
	Temperature float32 `env:"COMPLETION_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int     `env:"COMPLETION_MAX_TOKENS" envDefault:"4096"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	AnthropicAPIKey  string `env:"ANTHROPIC_API_KEY"`
	AnthropicModel   string `env:"ANTHROPIC_MODEL" envDefault:"claude-3-5-haiku-latest"`
	AnthropicBaseURL string `env:"ANTHROPIC_BASE_URL"`
}

type SessionConfig struct {
	Secret        string        `env:"SESSION_SECRET"`
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"10m"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks what the HTTP service needs at startup.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("SESSION_SECRET is required")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	_, err := c.CompletionConfig()
	return err
}

// CompletionConfig selects the key, model and endpoint of the configured provider.
func (c *Config) CompletionConfig() (utils.CompletionConfig, error) {
	s := c.Completion
	cc := utils.CompletionConfig{
		Provider:    strings.ToLower(strings.TrimSpace(s.Provider)),
		Temperature: s.Temperature,
		MaxTokens:   s.MaxTokens,
	}

	switch cc.Provider {
	case "gemini", "":
		cc.Provider = "gemini"
		cc.APIKey, cc.Model = s.GeminiAPIKey, s.GeminiModel
	case "openai":
		cc.APIKey, cc.Model, cc.BaseURL = s.OpenAIAPIKey, s.OpenAIModel, s.OpenAIBaseURL
	case "anthropic":
		cc.APIKey, cc.Model, cc.BaseURL = s.AnthropicAPIKey, s.AnthropicModel, s.AnthropicBaseURL
	default:
		return cc, fmt.Errorf("unsupported completion provider: %s. Use 'gemini', 'openai' or 'anthropic'", s.Provider)
	}

	if strings.TrimSpace(cc.APIKey) == "" {
		return cc, fmt.Errorf("%s_API_KEY is required when using the %s provider", strings.ToUpper(cc.Provider), cc.Provider)
	}
	return cc, nil
}
