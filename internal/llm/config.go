// Package llm provides centralized LLM configuration and client abstractions.
// Callers pick a model tier; the provider config decides which concrete model serves it.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for short, flat extractions: personal details, education
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning
	TierStandard ModelTier = "standard"
	// TierAdvanced is for chunk routing and nested extractions: jobs, projects, skills
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderBedrock is AWS Bedrock (Anthropic models via the Converse API)
	ProviderBedrock Provider = "bedrock"
)

// Sampling defaults shared by every provider
const (
	DefaultTemperature     float32 = 0.2
	DefaultMaxOutputTokens int32   = 3000
)

// Config holds the model configuration for the application
type Config struct {
	Provider        Provider
	Models          map[ModelTier]string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the default configuration (Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
}

// DefaultBedrockConfig returns a Bedrock configuration routing the advanced
// tier to sonnetModel and the lite tier to haikuModel.
// Empty arguments fall back to the public Claude 3.5 Sonnet / Claude 3 Haiku IDs.
func DefaultBedrockConfig(sonnetModel, haikuModel string) *Config {
	if sonnetModel == "" {
		sonnetModel = "anthropic.claude-3-5-sonnet-20240620-v1:0"
	}
	if haikuModel == "" {
		haikuModel = "anthropic.claude-3-haiku-20240307-v1:0"
	}
	return &Config{
		Provider: ProviderBedrock,
		Models: map[ModelTier]string{
			TierLite:     haikuModel,
			TierStandard: sonnetModel,
			TierAdvanced: sonnetModel,
		},
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:        c.Provider,
		Models:          make(map[ModelTier]string, len(c.Models)+1),
		Temperature:     c.Temperature,
		MaxOutputTokens: c.MaxOutputTokens,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
