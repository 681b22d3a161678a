package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

// converser is the slice of the Bedrock runtime API the client uses
type converser interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// BedrockClient implements Client for AWS Bedrock using the Converse API
type BedrockClient struct {
	runtime converser
	config  *Config
}

// NewBedrockClient creates a Bedrock client. Static keys are used when both are
// set; otherwise the default AWS credential chain applies.
func NewBedrockClient(ctx context.Context, config *Config, creds Credentials) (*BedrockClient, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if creds.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(creds.AWSRegion))
	}
	if creds.AWSAccessKeyID != "" && creds.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AWSAccessKeyID, creds.AWSSecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return newBedrockClient(bedrockruntime.NewFromConfig(awsCfg), config), nil
}

func newBedrockClient(runtime converser, config *Config) *BedrockClient {
	return &BedrockClient{runtime: runtime, config: config}
}

// GenerateContent generates text content using the specified model tier
func (c *BedrockClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(modelName),
		Messages: []brtypes.Message{
			{
				Role:    brtypes.ConversationRoleUser,
				Content: []brtypes.ContentBlock{&brtypes.ContentBlockMemberText{Value: prompt}},
			},
		},
		InferenceConfig: &brtypes.InferenceConfiguration{
			Temperature: aws.Float32(c.config.Temperature),
		},
	}
	if c.config.MaxOutputTokens > 0 {
		input.InferenceConfig.MaxTokens = aws.Int32(c.config.MaxOutputTokens)
	}

	out, err := c.runtime.Converse(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromConverse(out)
}

// GenerateJSON generates JSON content using the specified model tier.
// Bedrock has no JSON response mode, so fences and preambles are stripped here.
func (c *BedrockClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// GetModel returns the model name for a tier
func (c *BedrockClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the AWS SDK holds no per-client resources
func (c *BedrockClient) Close() error {
	return nil
}

func extractTextFromConverse(out *bedrockruntime.ConverseOutput) (string, error) {
	if out == nil {
		return "", fmt.Errorf("empty response")
	}

	msg, ok := out.Output.(*brtypes.ConverseOutputMemberMessage)
	if !ok {
		return "", fmt.Errorf("unexpected output type %T", out.Output)
	}

	var parts []string
	for _, block := range msg.Value.Content {
		if text, ok := block.(*brtypes.ContentBlockMemberText); ok {
			parts = append(parts, text.Value)
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
