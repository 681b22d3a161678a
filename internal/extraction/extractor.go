package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/prompts"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

// Extractor runs category extractions against an LLM client
type Extractor struct {
	client llm.Client
	logger zerolog.Logger
}

// NewExtractor creates an Extractor. The client is shared and must be safe for concurrent use.
func NewExtractor(client llm.Client, logger zerolog.Logger) *Extractor {
	return &Extractor{client: client, logger: logger}
}

// Extract pulls category's fields out of chunks. An empty chunk set yields
// the schema defaults without a model call.
func (e *Extractor) Extract(ctx context.Context, category types.Category, chunks []types.Chunk) (types.CategoryResult, error) {
	schema, err := SchemaFor(category)
	if err != nil {
		return nil, err
	}

	logger := e.logger.With().Str("category", string(category)).Logger()
	if len(chunks) == 0 {
		logger.Debug().Msg("no chunks routed, using defaults")
		return schema.ApplyDefaults(nil), nil
	}

	tier := Tiers[category]
	prompt, err := BuildPrompt(schema, chunks)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := e.client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return nil, &llm.APICallError{
			Message: fmt.Sprintf("%s extraction call failed", category),
			Cause:   err,
		}
	}

	result, err := ParseResponse(schema, raw)
	if err != nil {
		logger.Error().Err(err).Str("raw_response", raw).Msg("extraction response rejected")
		return nil, err
	}

	logger.Info().
		Str("tier", string(tier)).
		Int("chunks", len(chunks)).
		Int64("elapsed_ms", time.Since(start).Milliseconds()).
		Msg("extraction finished")
	logger.Debug().Interface("result", result).Msg("extraction result")

	return result, nil
}

// BuildPrompt renders the extraction prompt for schema over chunks
func BuildPrompt(schema llm.ExtractionSchema, chunks []types.Chunk) (string, error) {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	return prompts.Render("resume.json", "extract-category", map[string]string{
		"Category":           schema.Name,
		"Description":        schema.Description,
		"Context":            strings.Join(texts, "\n\n"),
		"FormatInstructions": schema.FormatInstructions(),
	})
}

// ParseResponse decodes and validates a model reply, then fills defaults.
// Malformed JSON or a shape mismatch is an error; unknown keys are dropped.
func ParseResponse(schema llm.ExtractionSchema, raw string) (types.CategoryResult, error) {
	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, &llm.ParseError{Message: "invalid JSON in response", Cause: err}
	}
	if decoded == nil {
		return nil, &llm.ParseError{Message: "response is not a JSON object"}
	}

	if err := schemas.ValidateDocument(schema.JSONSchema(), raw); err != nil {
		return nil, &llm.ParseError{Message: "response does not match schema", Cause: err}
	}

	return schema.ApplyDefaults(decoded), nil
}
