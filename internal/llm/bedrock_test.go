package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConverser struct {
	reply string
	err   error
	input *bedrockruntime.ConverseInput
}

func (f *fakeConverser) Converse(_ context.Context, params *bedrockruntime.ConverseInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.ConverseOutput{
		Output: &brtypes.ConverseOutputMemberMessage{
			Value: brtypes.Message{
				Role:    brtypes.ConversationRoleAssistant,
				Content: []brtypes.ContentBlock{&brtypes.ContentBlockMemberText{Value: f.reply}},
			},
		},
	}, nil
}

func TestBedrockClient_GenerateJSON(t *testing.T) {
	fake := &fakeConverser{reply: "Here you go:\n```json\n{\"city\": \"Pune\"}\n```"}
	client := newBedrockClient(fake, DefaultBedrockConfig("sonnet-id", "haiku-id"))

	out, err := client.GenerateJSON(context.Background(), "prompt", TierLite)
	require.NoError(t, err)
	assert.Equal(t, `{"city": "Pune"}`, out)

	require.NotNil(t, fake.input)
	assert.Equal(t, "haiku-id", aws.ToString(fake.input.ModelId))
	assert.Equal(t, DefaultTemperature, aws.ToFloat32(fake.input.InferenceConfig.Temperature))
	assert.Equal(t, DefaultMaxOutputTokens, aws.ToInt32(fake.input.InferenceConfig.MaxTokens))
	require.Len(t, fake.input.Messages, 1)
	assert.Equal(t, brtypes.ConversationRoleUser, fake.input.Messages[0].Role)
}

func TestBedrockClient_CallError(t *testing.T) {
	fake := &fakeConverser{err: errors.New("throttled")}
	client := newBedrockClient(fake, DefaultBedrockConfig("", ""))

	_, err := client.GenerateContent(context.Background(), "prompt", TierAdvanced)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func TestBedrockClient_NoModelForTier(t *testing.T) {
	client := newBedrockClient(&fakeConverser{}, &Config{Provider: ProviderBedrock})

	_, err := client.GenerateContent(context.Background(), "prompt", TierAdvanced)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no model configured")
}

func TestExtractTextFromConverse_UnexpectedOutput(t *testing.T) {
	_, err := extractTextFromConverse(&bedrockruntime.ConverseOutput{})
	assert.Error(t, err)

	_, err = extractTextFromConverse(nil)
	assert.Error(t, err)
}
