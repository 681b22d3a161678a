package pipeline

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-parser/internal/types"
)

// ErrProcessingFailed is matched by every error Parse returns, so callers
// can handle all pipeline failures uniformly.
var ErrProcessingFailed = errors.New("resume processing failed")

// Kind identifies the stage that failed
type Kind string

// Failure kinds
const (
	KindUpstreamValidation Kind = "UpstreamValidationFailure"
	KindChunking           Kind = "ChunkingFailure"
	KindClassification     Kind = "ClassificationFailure"
	KindExtraction         Kind = "ExtractionFailure"
	KindMerge              Kind = "MergeFailure"
)

// ProcessingError wraps a stage failure with its kind and, for extraction, the category
type ProcessingError struct {
	Kind     Kind
	Category types.Category
	RunID    string
	Cause    error
}

func (e *ProcessingError) Error() string {
	stage := string(e.Kind)
	if e.Category != "" {
		stage = fmt.Sprintf("%s (%s)", e.Kind, e.Category)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s: %v", ErrProcessingFailed, stage, e.Cause)
	}
	return fmt.Sprintf("%v: %s", ErrProcessingFailed, stage)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}

// Is reports ErrProcessingFailed as matching every ProcessingError
func (e *ProcessingError) Is(target error) bool {
	return target == ErrProcessingFailed
}

// KindOf returns the kind of a ProcessingError in err's chain, or ""
func KindOf(err error) Kind {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
