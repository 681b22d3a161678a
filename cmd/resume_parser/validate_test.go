package main

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/types"
)

var schemaPath = filepath.Join("..", "..", "schemas", "resume_record.schema.json")

func validRecordJSON(t *testing.T) string {
	t.Helper()
	record := &types.ResumeRecord{FirstName: "Asha", Dob: "1994-03-01", Skills: []string{"Go"}}
	normalize.Record(record)
	data, err := json.Marshal(record)
	require.NoError(t, err)
	return string(data)
}

func TestRunValidate_Success(t *testing.T) {
	jsonPath := writeInput(t, "record.json", validRecordJSON(t))

	var out bytes.Buffer
	require.NoError(t, runValidate(&out, schemaPath, jsonPath))
	assert.Contains(t, out.String(), "Validation passed")
}

func TestRunValidate_DefaultSchema(t *testing.T) {
	jsonPath := writeInput(t, "record.json", validRecordJSON(t))

	var out bytes.Buffer
	require.NoError(t, runValidate(&out, "", jsonPath))
	assert.Contains(t, out.String(), "Validation passed")
}

func TestRunValidate_Failure(t *testing.T) {
	jsonPath := writeInput(t, "record.json", `{"firstName": "Asha", "dob": "March 1994"}`)

	var out bytes.Buffer
	err := runValidate(&out, schemaPath, jsonPath)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Validation failed")
}

func TestRunValidate_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runValidate(&out, schemaPath, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.NotContains(t, out.String(), "Validation passed")
}

// getBinaryPath returns the path to a prebuilt resume_parser binary
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}
	binaryPath := filepath.Join("..", "..", "bin", "resume_parser")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_parser ./cmd/resume_parser'", binaryPath)
	}
	return binaryPath
}

func TestValidateCommand_ExitCode(t *testing.T) {
	binaryPath := getBinaryPath(t)
	jsonPath := writeInput(t, "record.json", `{"firstName": 1}`)

	cmd := exec.Command(binaryPath, "validate", "--schema", schemaPath, "--json", jsonPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "Validation failed")
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitError.ExitCode())
	}
}
