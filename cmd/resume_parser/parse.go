package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

const recordSchemaPath = "schemas/resume_record.schema.json"

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume into a structured JSON record",
	Long: "Parse a PDF, DOCX or DOC resume (or a plain .txt file) into a normalized ResumeRecord JSON. " +
		"The record is written to stdout unless --out is given.",
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var (
	parseOutputFile string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print chunks, classification and a record summary to stderr")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	llmCfg, creds := cfg.LLM()
	client, err := llm.NewClient(ctx, llmCfg, creds)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	var verbose io.Writer
	if parseVerbose {
		verbose = os.Stderr
	}

	record, err := parseResume(ctx, client, cfg, logger, args[0], verbose)
	if err != nil {
		return err
	}

	if parseOutputFile == "" {
		return writeRecord(os.Stdout, record)
	}
	if err := writeRecordFile(parseOutputFile, record); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "Output: %s\n", parseOutputFile)
	return nil
}

// newParser builds the pipeline from configuration
func newParser(client llm.Client, cfg *config.Config, logger zerolog.Logger, onProgress pipeline.ProgressCallback) *pipeline.Parser {
	overlap := cfg.ChunkOverlap
	return pipeline.New(client, &ingestion.FileExtractor{AntiwordPath: cfg.AntiwordPath}, logger, pipeline.Options{
		ChunkSize:    cfg.ChunkSize,
		ChunkOverlap: &overlap,
		CallTimeout:  cfg.CallTimeout(),
		OnProgress:   onProgress,
	})
}

// parseResume runs the pipeline on path. Plain .txt files skip document
// extraction. When verbose is set, intermediate stages are printed to it.
func parseResume(ctx context.Context, client llm.Client, cfg *config.Config, logger zerolog.Logger, path string, verbose io.Writer) (*types.ResumeRecord, error) {
	var (
		printer    *observability.Printer
		onProgress pipeline.ProgressCallback
	)
	if verbose != nil {
		printer = observability.NewPrinter(verbose)
		onProgress = func(e pipeline.ProgressEvent) {
			switch e.Step {
			case pipeline.StepChunk:
				printer.PrintChunks(e.Chunks)
			case pipeline.StepClassify:
				printer.PrintClassification(e.Classification)
			}
		}
	}

	p := newParser(client, cfg, logger, onProgress)

	var (
		record *types.ResumeRecord
		err    error
	)
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		var data []byte
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		record, err = p.ParseText(ctx, ingestion.CleanText(string(data)))
	} else {
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, fmt.Errorf("failed to read input file: %w", statErr)
		}
		record, err = p.Parse(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	if printer != nil {
		printer.PrintResumeRecord(record)
	}
	return record, nil
}

func writeRecord(w io.Writer, record *types.ResumeRecord) error {
	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}

// writeRecordFile writes record to path and checks it against the record schema
func writeRecordFile(path string, record *types.ResumeRecord) error {
	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	schemaPath := schemas.ResolveSchemaPath(recordSchemaPath)
	if schemaPath == "" {
		return nil
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	}
	return nil
}
