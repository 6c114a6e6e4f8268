package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.InDelta(t, 0.5, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.InitialWait)
	assert.Equal(t, 1, cfg.Pipeline.CorrectiveAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Pipeline.RunTimeout)
	assert.False(t, cfg.HintsDefaultFor("mcq"))
	assert.True(t, cfg.HintsDefaultFor("coding_quiz"))
	assert.True(t, cfg.HintsDefaultFor("mcq_batch"))
	assert.False(t, cfg.Parser.StrictLengths)
	assert.Equal(t, time.Hour, cfg.Generation.RecordTTL)
	assert.Empty(t, cfg.Redis.Address)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 9000
llm:
  provider: ollama
  model: llama3
  temperature: 0.2
pipeline:
  corrective_attempts: 0
  hints:
    mcq: true
parser:
  strict_lengths: true
redis:
  address: localhost:6379
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	t.Setenv("LLM_MODEL", "mistral")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, ProviderOllama, cfg.LLM.Provider)
	assert.Equal(t, "mistral", cfg.LLM.Model)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 0, cfg.Pipeline.CorrectiveAttempts)
	assert.True(t, cfg.HintsDefaultFor("mcq"))
	assert.True(t, cfg.Parser.StrictLengths)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
}

func TestLoad_InvalidServerPortEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"temperature above two", func(c *Config) { c.LLM.Temperature = 2.5 }},
		{"negative temperature", func(c *Config) { c.LLM.Temperature = -0.1 }},
		{"zero timeout", func(c *Config) { c.LLM.Timeout = 0 }},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "gemini" }},
		{"empty model", func(c *Config) { c.LLM.Model = "" }},
		{"no attempts", func(c *Config) { c.Retry.MaxAttempts = 0 }},
		{"shrinking backoff", func(c *Config) { c.Retry.Multiplier = 0.5 }},
		{"max wait below initial", func(c *Config) { c.Retry.MaxWait = c.Retry.InitialWait - 1 }},
		{"negative corrective attempts", func(c *Config) { c.Pipeline.CorrectiveAttempts = -1 }},
		{"negative run timeout", func(c *Config) { c.Pipeline.RunTimeout = -time.Second }},
		{"sample ratio above one", func(c *Config) { c.Tracing.SampleRatio = 1.5 }},
	}

	assert.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
