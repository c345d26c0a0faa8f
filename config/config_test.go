package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("CLARIO_POSTGRES_DSN", "postgres://localhost/clario_test")
	t.Setenv("CLARIO_JWT_SECRET", "test-secret")
	t.Setenv("CLARIO_OPENAI_API_KEY", "sk-test")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.HTTPPort)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadSize)
	assert.Equal(t, "openai", cfg.AIProvider)
	assert.Equal(t, 60*time.Second, cfg.AITimeout)
	assert.Equal(t, 24, cfg.TokenExpireHours)
	assert.False(t, cfg.ClearAnalysisOnEdit)
	assert.False(t, cfg.ESEnabled())
	assert.False(t, cfg.MilvusEnabled())
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CLARIO_HTTP_PORT", "8080")
	t.Setenv("CLARIO_AI_PROVIDER", "ollama")
	t.Setenv("CLARIO_ES_ADDR", "http://localhost:9200")
	t.Setenv("CLARIO_USERS", "alice:secret,bob:hunter2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "ollama", cfg.AIProvider)
	assert.True(t, cfg.ESEnabled())
	assert.Equal(t, []string{"alice:secret", "bob:hunter2"}, cfg.Users)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Run("missing openai key", func(t *testing.T) {
		cfg := Config{HTTPPort: 5000, MaxUploadSize: 1, AIProvider: "openai", AITimeout: time.Second}
		assert.Error(t, cfg.Validate())
	})
	t.Run("ollama needs no key", func(t *testing.T) {
		cfg := Config{HTTPPort: 5000, MaxUploadSize: 1, AIProvider: "ollama", AITimeout: time.Second}
		assert.NoError(t, cfg.Validate())
	})
	t.Run("unknown provider", func(t *testing.T) {
		cfg := Config{HTTPPort: 5000, MaxUploadSize: 1, AIProvider: "gemini", AITimeout: time.Second}
		assert.Error(t, cfg.Validate())
	})
	t.Run("bad port", func(t *testing.T) {
		cfg := Config{HTTPPort: 0, MaxUploadSize: 1, AIProvider: "ollama", AITimeout: time.Second}
		assert.Error(t, cfg.Validate())
	})
	t.Run("non-positive upload size", func(t *testing.T) {
		cfg := Config{HTTPPort: 5000, MaxUploadSize: 0, AIProvider: "ollama", AITimeout: time.Second}
		assert.Error(t, cfg.Validate())
	})
}
