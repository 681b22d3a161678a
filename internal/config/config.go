// Package config loads service and CLI settings from the environment and an
// optional JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-parser/internal/chunking"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/logging"
)

// Defaults
const (
	DefaultPort        = 8000
	DefaultCallTimeout = 60 * time.Second
	DefaultRegion      = "us-east-1"
)

// Config holds every tunable of the parser. Values come from the environment
// (and .env), then from the JSON config file when one is given.
type Config struct {
	// LLM
	LLMProvider        string `json:"llm_provider,omitempty" validate:"required,oneof=gemini bedrock"`
	GeminiAPIKey       string `json:"gemini_api_key,omitempty" validate:"required_if=LLMProvider gemini"`
	AWSAccessKeyID     string `json:"aws_access_key_id,omitempty" validate:"required_if=LLMProvider bedrock"`
	AWSSecretAccessKey string `json:"aws_secret_access_key,omitempty" validate:"required_if=LLMProvider bedrock"`
	AWSRegion          string `json:"aws_region_name,omitempty"`
	ModelSonnet        string `json:"model_sonnet,omitempty"` // advanced-tier Bedrock model ID
	ModelHaiku         string `json:"model_haiku,omitempty"`  // lite-tier Bedrock model ID
	CallTimeoutSeconds int    `json:"llm_call_timeout,omitempty" validate:"gte=0"`

	// Chunking
	ChunkSize    int `json:"chunk_size,omitempty" validate:"gt=0"`
	ChunkOverlap int `json:"chunk_overlap,omitempty" validate:"gte=0,ltfield=ChunkSize"`

	// Ingestion
	AntiwordPath string `json:"antiword_path,omitempty"`

	// Logging
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=json pretty"`

	// Server
	Port int `json:"port,omitempty" validate:"min=1,max=65535"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		LLMProvider:        string(llm.ProviderGemini),
		AWSRegion:          DefaultRegion,
		CallTimeoutSeconds: int(DefaultCallTimeout / time.Second),
		ChunkSize:          chunking.DefaultSize,
		ChunkOverlap:       chunking.DefaultOverlap,
		AntiwordPath:       "antiword",
		LogLevel:           "info",
		LogFormat:          "json",
		Port:               DefaultPort,
	}
}

// Load builds the configuration: defaults, then environment, then the JSON
// file at path if path is not empty. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overwrites fields whose environment variable is set and non-empty
func (c *Config) ApplyEnv(getenv func(string) string) error {
	strs := map[string]*string{
		"LLM_PROVIDER":          &c.LLMProvider,
		"GEMINI_API_KEY":        &c.GeminiAPIKey,
		"AWS_ACCESS_KEY_ID":     &c.AWSAccessKeyID,
		"AWS_SECRET_ACCESS_KEY": &c.AWSSecretAccessKey,
		"AWS_REGION_NAME":       &c.AWSRegion,
		"MODEL_SONNET":          &c.ModelSonnet,
		"MODEL_HAIKU":           &c.ModelHaiku,
		"ANTIWORD_PATH":         &c.AntiwordPath,
		"LOG_LEVEL":             &c.LogLevel,
		"LOG_FORMAT":            &c.LogFormat,
	}
	for key, dst := range strs {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"LLM_CALL_TIMEOUT": &c.CallTimeoutSeconds,
		"CHUNK_SIZE":       &c.ChunkSize,
		"CHUNK_OVERLAP":    &c.ChunkOverlap,
		"PORT":             &c.Port,
	}
	for key, dst := range ints {
		v := getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer, got %q", key, v)
		}
		*dst = n
	}
	return nil
}

// Validate checks field values and provider credentials
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	strs := []struct{ dst, def *string }{
		{&result.LLMProvider, &defaults.LLMProvider},
		{&result.GeminiAPIKey, &defaults.GeminiAPIKey},
		{&result.AWSAccessKeyID, &defaults.AWSAccessKeyID},
		{&result.AWSSecretAccessKey, &defaults.AWSSecretAccessKey},
		{&result.AWSRegion, &defaults.AWSRegion},
		{&result.ModelSonnet, &defaults.ModelSonnet},
		{&result.ModelHaiku, &defaults.ModelHaiku},
		{&result.AntiwordPath, &defaults.AntiwordPath},
		{&result.LogLevel, &defaults.LogLevel},
		{&result.LogFormat, &defaults.LogFormat},
	}
	for _, f := range strs {
		if *f.dst == "" {
			*f.dst = *f.def
		}
	}

	// Int fields: use default if zero
	if result.CallTimeoutSeconds == 0 {
		result.CallTimeoutSeconds = defaults.CallTimeoutSeconds
	}
	if result.ChunkSize == 0 {
		result.ChunkSize = defaults.ChunkSize
	}
	if result.ChunkOverlap == 0 {
		result.ChunkOverlap = defaults.ChunkOverlap
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}

// CallTimeout returns the per-call LLM timeout
func (c *Config) CallTimeout() time.Duration {
	if c.CallTimeoutSeconds <= 0 {
		return DefaultCallTimeout
	}
	return time.Duration(c.CallTimeoutSeconds) * time.Second
}

// LLM returns the provider configuration and credentials for llm.NewClient
func (c *Config) LLM() (*llm.Config, llm.Credentials) {
	var llmCfg *llm.Config
	switch llm.Provider(c.LLMProvider) {
	case llm.ProviderBedrock:
		llmCfg = llm.DefaultBedrockConfig(c.ModelSonnet, c.ModelHaiku)
	default:
		llmCfg = llm.DefaultGeminiConfig()
	}

	return llmCfg, llm.Credentials{
		GeminiAPIKey:       c.GeminiAPIKey,
		AWSAccessKeyID:     c.AWSAccessKeyID,
		AWSSecretAccessKey: c.AWSSecretAccessKey,
		AWSRegion:          c.AWSRegion,
	}
}

// Logging returns the logger settings
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat}
}
