package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a JSON Schema",
	Long:  "Validate a JSON file (by default a parsed resume) against a JSON Schema and report field-level errors.",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runValidate(os.Stdout, validateSchema, validateJSON)
	},
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to JSON Schema (default schemas/resume_record.schema.json)")
	validateCmd.Flags().StringVar(&validateJSON, "json", "", "Path to JSON file to validate")
	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(out io.Writer, schemaPath, jsonPath string) error {
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(recordSchemaPath)
		if schemaPath == "" {
			return fmt.Errorf("schema not found: pass --schema")
		}
	}

	err := schemas.ValidateJSON(schemaPath, jsonPath)
	if err == nil {
		_, _ = fmt.Fprintln(out, "Validation passed")
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(out, "Validation failed:\n")
		for _, fe := range validationErr.Errors {
			_, _ = fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
		}
	}
	return err
}
