package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "CORS_ALLOWED_ORIGINS", "COMPLETION_PROVIDER", "COMPLETION_TEMPERATURE",
		"COMPLETION_MAX_TOKENS", "GEMINI_API_KEY", "GEMINI_MODEL", "OPENAI_API_KEY", "OPENAI_MODEL",
		"OPENAI_BASE_URL", "ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "ANTHROPIC_BASE_URL",
		"SESSION_SECRET", "SESSION_TTL", "SESSION_SWEEP_INTERVAL", "ASSET_DIR", "TRANSPORT_LINKS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "gemini", cfg.Completion.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.Completion.GeminiModel)
	assert.InDelta(t, 0.7, cfg.Completion.Temperature, 1e-6)
	assert.Equal(t, 4096, cfg.Completion.MaxTokens)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "assets", cfg.AssetDir)
	assert.Empty(t, cfg.TransportLinks)
}

func TestParse_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("COMPLETION_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("TRANSPORT_LINKS", "Car=https://cars.example/rent,Walking=https://walk.example")

	cfg, err := Parse()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, map[string]string{
		"Car":     "https://cars.example/rent",
		"Walking": "https://walk.example",
	}, cfg.TransportLinks)

	cc, err := cfg.CompletionConfig()
	require.NoError(t, err)
	assert.Equal(t, "openai", cc.Provider)
	assert.Equal(t, "sk-test", cc.APIKey)
	assert.Equal(t, "gpt-4o-mini", cc.Model)
	assert.Equal(t, "http://localhost:11434/v1", cc.BaseURL)
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "SESSION_SECRET")

	cfg.Session.Secret = "s3cret"
	assert.NoError(t, cfg.Validate())

	cfg.Completion.GeminiAPIKey = ""
	assert.ErrorContains(t, cfg.Validate(), "GEMINI_API_KEY")

	cfg.Completion.Provider = "anthropic"
	assert.ErrorContains(t, cfg.Validate(), "ANTHROPIC_API_KEY")

	cfg.Completion.Provider = "mistral"
	assert.ErrorContains(t, cfg.Validate(), "unsupported completion provider")
}
