// Package pipeline orchestrates a resume parse: text extraction, chunking,
// chunk classification, concurrent per-category extraction and merging.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/chunking"
	"github.com/jonathan/resume-parser/internal/classify"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/types"
)

// DefaultCallTimeout bounds each model call
const DefaultCallTimeout = 60 * time.Second

// Pipeline steps reported through ProgressCallback
const (
	StepExtractText = "extract_text"
	StepChunk       = "chunk"
	StepClassify    = "classify"
	StepExtract     = "extract"
	StepMerge       = "merge"
)

// ProgressEvent represents a progress update during a parse
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category,omitempty"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`

	// Set on the chunk and classify events respectively
	Chunks         []types.Chunk           `json:"-"`
	Classification types.ClassificationMap `json:"-"`
}

// ProgressCallback is called when pipeline progress occurs. It may be called
// from several goroutines at once.
type ProgressCallback func(event ProgressEvent)

// Options configures a Parser
type Options struct {
	ChunkSize    int
	ChunkOverlap *int // nil uses chunking.DefaultOverlap; 0 disables overlap
	CallTimeout  time.Duration
	OnProgress   ProgressCallback
}

// Parser runs the resume parsing pipeline. It holds no per-run state and is
// safe for concurrent use.
type Parser struct {
	client llm.Client
	text   ingestion.TextExtractor
	opts   Options
	logger zerolog.Logger
}

// New creates a Parser over client and text
func New(client llm.Client, text ingestion.TextExtractor, logger zerolog.Logger, opts Options) *Parser {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = chunking.DefaultSize
	}
	if opts.ChunkOverlap == nil || *opts.ChunkOverlap < 0 {
		overlap := chunking.DefaultOverlap
		opts.ChunkOverlap = &overlap
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = DefaultCallTimeout
	}
	return &Parser{
		client: client,
		text:   text,
		opts:   opts,
		logger: logger,
	}
}

// Parse extracts the text of the resume at path and parses it
func (p *Parser) Parse(ctx context.Context, path string) (*types.ResumeRecord, error) {
	runID := uuid.New().String()
	logger := p.logger.With().Str("run_id", runID).Logger()

	p.emit(ProgressEvent{Step: StepExtractText, Message: "extracting document text", RunID: runID})
	text, err := p.text.ExtractText(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("text extraction failed")
		return nil, &ProcessingError{Kind: KindUpstreamValidation, RunID: runID, Cause: err}
	}

	return p.run(ctx, runID, logger, text)
}

// ParseText parses already-extracted resume text
func (p *Parser) ParseText(ctx context.Context, text string) (*types.ResumeRecord, error) {
	runID := uuid.New().String()
	return p.run(ctx, runID, p.logger.With().Str("run_id", runID).Logger(), text)
}

func (p *Parser) run(ctx context.Context, runID string, logger zerolog.Logger, text string) (*types.ResumeRecord, error) {
	start := time.Now()

	// Step 1: chunk
	chunks, err := chunking.Chunk(text, chunking.WithSize(p.opts.ChunkSize), chunking.WithOverlap(*p.opts.ChunkOverlap))
	if err != nil {
		logger.Error().Err(err).Msg("chunking failed")
		return nil, &ProcessingError{Kind: KindChunking, RunID: runID, Cause: err}
	}
	logger.Info().Int("chunks", len(chunks)).Int("text_chars", len(text)).Msg("text chunked")
	p.emit(ProgressEvent{Step: StepChunk, Message: "text split into chunks", RunID: runID, Chunks: chunks})

	// Step 2: classify. Every extraction depends on it.
	classification, err := p.classify(ctx, classify.NewClassifier(p.client, logger), chunks)
	if err != nil {
		logger.Error().Err(err).Msg("classification failed")
		return nil, &ProcessingError{Kind: KindClassification, RunID: runID, Cause: err}
	}
	p.emit(ProgressEvent{Step: StepClassify, Message: "chunks classified", RunID: runID, Classification: classification})

	// Step 3: extract all categories concurrently; the first failure cancels the rest
	extractor := extraction.NewExtractor(p.client, logger)
	results := make([]types.CategoryResult, len(types.AllCategories))
	g, gCtx := errgroup.WithContext(ctx)
	for i, category := range types.AllCategories {
		subset := classification.Select(category, chunks)
		g.Go(func() error {
			p.emit(ProgressEvent{Step: StepExtract, Category: string(category), Message: "extracting section", RunID: runID})

			callCtx, cancel := context.WithTimeout(gCtx, p.opts.CallTimeout)
			defer cancel()

			result, err := extractor.Extract(callCtx, category, subset)
			if err != nil {
				return &ProcessingError{Kind: KindExtraction, Category: category, RunID: runID, Cause: err}
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("extraction failed")
		return nil, err
	}

	// Step 4: merge and normalize
	p.emit(ProgressEvent{Step: StepMerge, Message: "merging sections", RunID: runID})
	record, err := normalize.Merge(results)
	if err != nil {
		logger.Error().Err(err).Msg("merge failed")
		return nil, &ProcessingError{Kind: KindMerge, RunID: runID, Cause: err}
	}

	logger.Info().
		Int("jobs", len(record.Jobs)).
		Int("projects", len(record.Projects)).
		Int("education", len(record.Education)).
		Int("skills", len(record.Skills)).
		Int64("elapsed_ms", time.Since(start).Milliseconds()).
		Msg("resume parsed")
	logger.Debug().Interface("record", record).Msg("parsed record")

	return record, nil
}

func (p *Parser) classify(ctx context.Context, c *classify.Classifier, chunks []types.Chunk) (types.ClassificationMap, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.opts.CallTimeout)
	defer cancel()
	return c.Classify(callCtx, chunks)
}

func (p *Parser) emit(event ProgressEvent) {
	if p.opts.OnProgress != nil {
		p.opts.OnProgress(event)
	}
}
