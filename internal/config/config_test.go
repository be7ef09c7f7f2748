package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Rrens/fitcoach/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "groq", cfg.LLM.DefaultProvider)
	assert.Equal(t, "gsk-test", cfg.LLM.Groq.APIKey)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.Groq.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 4096, cfg.Training.MaxTokens)
	assert.InDelta(t, 0.95, cfg.Training.TopP, 1e-9)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "authToken", cfg.Auth.CookieName)
	assert.False(t, cfg.Server.Production())
}

func TestLoad_FileAndBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9090
  environment: production
storage:
  driver: mongo
training:
  temperature: 0.5
  bounds:
    altura:
      min: 120
      max: 220
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("STORAGE_DRIVER", "postgres")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Server.Production())
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.InDelta(t, 0.5, cfg.Training.Temperature, 1e-9)

	bounds, err := cfg.Training.ValidatorBounds()
	require.NoError(t, err)
	assert.Equal(t, 120.0, bounds.Height.Min)
	assert.Equal(t, 220.0, bounds.Height.Max)
	assert.Equal(t, 30.0, bounds.Weight.Min)
}

func TestTrainingConfig_InvalidBounds(t *testing.T) {
	cfg := TrainingConfig{Bounds: map[string]training.Range{"peso": {Min: 10, Max: 5}}}
	_, err := cfg.ValidatorBounds()
	assert.Error(t, err)

	cfg = TrainingConfig{Bounds: map[string]training.Range{"pescoco": {Min: 10, Max: 50}}}
	_, err = cfg.ValidatorBounds()
	assert.Error(t, err)
}
