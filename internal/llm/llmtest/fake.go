// Package llmtest provides a scripted llm.Client for tests.
package llmtest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/resume-parser/internal/llm"
)

// Call records one request made to the FakeClient
type Call struct {
	Prompt string
	Tier   llm.ModelTier
}

// Responder produces a reply for a prompt. Returning an error simulates a failed call.
type Responder func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)

// FakeClient is a concurrency-safe llm.Client driven by a Responder.
type FakeClient struct {
	Respond Responder

	mu    sync.Mutex
	calls []Call
}

// NewFakeClient returns a FakeClient using respond
func NewFakeClient(respond Responder) *FakeClient {
	return &FakeClient{Respond: respond}
}

// ByMarker returns a Responder that answers with the reply of the first marker
// found in the prompt. Prompts matching no marker fail.
func ByMarker(replies map[string]string) Responder {
	return func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
		for marker, reply := range replies {
			if strings.Contains(prompt, marker) {
				return reply, nil
			}
		}
		return "", fmt.Errorf("no scripted reply for prompt")
	}
}

// GenerateContent records the call and delegates to Respond
func (f *FakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Prompt: prompt, Tier: tier})
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.Respond == nil {
		return "", fmt.Errorf("no responder configured")
	}
	return f.Respond(ctx, prompt, tier)
}

// GenerateJSON behaves like GenerateContent followed by llm.CleanJSONBlock
func (f *FakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	out, err := f.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", err
	}
	return llm.CleanJSONBlock(out), nil
}

// GetModel returns the tier name
func (f *FakeClient) GetModel(tier llm.ModelTier) string {
	return string(tier)
}

// Close is a no-op
func (f *FakeClient) Close() error {
	return nil
}

// Calls returns a copy of the recorded calls
func (f *FakeClient) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns the number of recorded calls
func (f *FakeClient) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
