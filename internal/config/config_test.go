package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/llm"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"llm_provider": "bedrock",
		"aws_region_name": "ap-south-1",
		"chunk_size": 800,
		"log_format": "pretty"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "bedrock", cfg.LLMProvider)
	assert.Equal(t, "ap-south-1", cfg.AWSRegion)
	assert.Equal(t, 800, cfg.ChunkSize)
	assert.Equal(t, "pretty", cfg.LogFormat)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		"LLM_PROVIDER":          "bedrock",
		"AWS_ACCESS_KEY_ID":     "AKIA",
		"AWS_SECRET_ACCESS_KEY": "secret",
		"MODEL_SONNET":          "sonnet-id",
		"CHUNK_SIZE":            "1200",
		"LLM_CALL_TIMEOUT":      "30",
		"PORT":                  "9000",
	}))
	require.NoError(t, err)

	assert.Equal(t, "bedrock", cfg.LLMProvider)
	assert.Equal(t, "AKIA", cfg.AWSAccessKeyID)
	assert.Equal(t, 1200, cfg.ChunkSize)
	assert.Equal(t, DefaultRegion, cfg.AWSRegion)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout())
	assert.Equal(t, 9000, cfg.Port)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv_ZeroOverlap(t *testing.T) {
	cfg := Default()
	cfg.GeminiAPIKey = "key"
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{"CHUNK_OVERLAP": "0"})))

	assert.Equal(t, 0, cfg.ChunkOverlap)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv_BadInteger(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{"CHUNK_SIZE": "large"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHUNK_SIZE")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Default()
		cfg.GeminiAPIKey = "key"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with key", func(*Config) {}, false},
		{"missing gemini key", func(c *Config) { c.GeminiAPIKey = "" }, true},
		{"unknown provider", func(c *Config) { c.LLMProvider = "openai" }, true},
		{"bedrock without credentials", func(c *Config) { c.LLMProvider = "bedrock" }, true},
		{"bedrock with credentials", func(c *Config) {
			c.LLMProvider = "bedrock"
			c.AWSAccessKeyID = "id"
			c.AWSSecretAccessKey = "secret"
		}, false},
		{"overlap not below size", func(c *Config) { c.ChunkOverlap = c.ChunkSize }, true},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"port out of range", func(c *Config) { c.Port = 70000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_FileOverridesEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("CHUNK_SIZE", "900")
	t.Setenv("LOG_LEVEL", "debug")

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"chunk_size": 1500}`), 0644))

	cfg, err := Load(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.GeminiAPIKey)
	assert.Equal(t, 1500, cfg.ChunkSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoad_InvalidFails(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LLM_PROVIDER", "gemini")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestLLM(t *testing.T) {
	cfg := Default()
	cfg.LLMProvider = "bedrock"
	cfg.ModelSonnet = "sonnet-id"
	cfg.AWSAccessKeyID = "id"

	llmCfg, creds := cfg.LLM()
	assert.Equal(t, llm.ProviderBedrock, llmCfg.Provider)
	assert.Equal(t, "sonnet-id", llmCfg.GetModel(llm.TierAdvanced))
	assert.Equal(t, "id", creds.AWSAccessKeyID)
	assert.Equal(t, DefaultRegion, creds.AWSRegion)

	cfg.LLMProvider = "gemini"
	llmCfg, _ = cfg.LLM()
	assert.Equal(t, llm.ProviderGemini, llmCfg.Provider)
}

func TestLogging(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "warn"
	assert.Equal(t, "warn", cfg.Logging().Level)
	assert.Equal(t, "json", cfg.Logging().Format)
}
