package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GEMINI_API_KEY", "SUMMARIZE_TIMEOUT"} {
		t.Setenv(key, "") // registers restore of any ambient value
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, 30*time.Second, cfg.SummarizeTimeout)
	assert.Empty(t, cfg.GeminiAPIKey, "missing key is a supported state")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SUMMARIZE_TIMEOUT", "5s")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, 5*time.Second, cfg.SummarizeTimeout)
	assert.Contains(t, cfg.DatabaseURL(), "db.internal")
}
