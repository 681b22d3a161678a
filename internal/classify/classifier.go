// Package classify routes resume chunks to the sections they carry data for.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/prompts"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

// Tier is the model tier used for classification
const Tier = llm.TierAdvanced

// Schema describes the classification reply: one list of chunk numbers per category
func Schema() llm.ExtractionSchema {
	fields := make([]llm.SchemaField, len(types.AllCategories))
	for i, category := range types.AllCategories {
		fields[i] = llm.SchemaField{
			Name:        string(category),
			Kind:        llm.KindIntList,
			Description: fmt.Sprintf("Chunk numbers with %s data", category),
		}
	}
	return llm.ExtractionSchema{
		Name:   "ChunkClassification",
		Fields: fields,
		Strict: true,
	}
}

// Classifier assigns chunk indices to categories with one model call
type Classifier struct {
	client llm.Client
	logger zerolog.Logger
}

// NewClassifier creates a Classifier
func NewClassifier(client llm.Client, logger zerolog.Logger) *Classifier {
	return &Classifier{client: client, logger: logger}
}

// Classify returns the chunk indices relevant to each category. Every
// category key is present; indices are sorted, unique and in range.
// No chunks means no model call and an all-empty map.
func (c *Classifier) Classify(ctx context.Context, chunks []types.Chunk) (types.ClassificationMap, error) {
	if len(chunks) == 0 {
		return types.NewClassificationMap(), nil
	}

	prompt, err := BuildPrompt(chunks)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := c.client.GenerateJSON(ctx, prompt, Tier)
	if err != nil {
		return nil, &llm.APICallError{Message: "classification call failed", Cause: err}
	}

	result, dropped, err := ParseResponse(raw, len(chunks))
	if err != nil {
		c.logger.Error().Err(err).Str("raw_response", raw).Msg("classification response rejected")
		return nil, err
	}
	if len(dropped) > 0 {
		c.logger.Warn().Ints("indices", dropped).Int("chunks", len(chunks)).Msg("dropped out-of-range chunk indices")
	}

	c.logger.Info().
		Int("chunks", len(chunks)).
		Int64("elapsed_ms", time.Since(start).Milliseconds()).
		Msg("classification finished")
	c.logger.Debug().Interface("classification", result).Msg("classification result")

	return result, nil
}

// BuildPrompt renders the classification prompt for chunks
func BuildPrompt(chunks []types.Chunk) (string, error) {
	var sections strings.Builder
	for _, category := range types.AllCategories {
		schema, err := extraction.SchemaFor(category)
		if err != nil {
			return "", err
		}
		sections.WriteString("- " + schema.Summary() + "\n")
	}

	var listing strings.Builder
	for _, chunk := range chunks {
		fmt.Fprintf(&listing, "Chunk %d: %s\n", chunk.Index, chunk.Text)
	}

	return prompts.Render("resume.json", "classify-chunks", map[string]string{
		"Sections":           strings.TrimRight(sections.String(), "\n"),
		"Chunks":             strings.TrimRight(listing.String(), "\n"),
		"FormatInstructions": Schema().FormatInstructions(),
	})
}

// ParseResponse validates a classification reply and normalizes it against
// numChunks. Out-of-range indices are removed and returned as dropped.
func ParseResponse(raw string, numChunks int) (types.ClassificationMap, []int, error) {
	var decoded map[string][]float64
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, nil, &llm.ParseError{Message: "invalid JSON in classification", Cause: err}
	}
	if err := schemas.ValidateDocument(Schema().JSONSchema(), raw); err != nil {
		return nil, nil, &llm.ParseError{Message: "classification does not match schema", Cause: err}
	}

	result := types.NewClassificationMap()
	var dropped []int
	for _, category := range types.AllCategories {
		seen := make(map[int]bool)
		for _, f := range decoded[string(category)] {
			idx := int(f)
			if idx < 0 || idx >= numChunks {
				dropped = append(dropped, idx)
				continue
			}
			if !seen[idx] {
				seen[idx] = true
				result[category] = append(result[category], idx)
			}
		}
		sort.Ints(result[category])
	}
	return result, dropped, nil
}
