// Package chunking splits resume text into overlapping, whitespace-normalized chunks.
package chunking

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"

	"github.com/jonathan/resume-parser/internal/types"
)

// Default chunk geometry, in characters
const (
	DefaultSize    = 1000
	DefaultOverlap = 50
)

// Separators are tried in order: paragraph, line, word, character.
var Separators = []string{"\n\n", "\n", " ", ""}

type options struct {
	size    int
	overlap int
}

// Option configures Chunk
type Option func(*options)

// WithSize sets the maximum chunk length in characters
func WithSize(size int) Option {
	return func(o *options) { o.size = size }
}

// WithOverlap sets how many characters consecutive chunks share
func WithOverlap(overlap int) Option {
	return func(o *options) { o.overlap = overlap }
}

// Chunk splits text into chunks of at most size characters, cleans each one
// and numbers the survivors 0..n-1. Empty or whitespace-only input yields an
// empty slice.
func Chunk(text string, opts ...Option) ([]types.Chunk, error) {
	o := options{size: DefaultSize, overlap: DefaultOverlap}
	for _, opt := range opts {
		opt(&o)
	}
	if o.size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", o.size)
	}
	if o.overlap < 0 || o.overlap >= o.size {
		return nil, fmt.Errorf("chunk overlap must be in [0, %d), got %d", o.size, o.overlap)
	}

	chunks := []types.Chunk{}
	if strings.TrimSpace(text) == "" {
		return chunks, nil
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(o.size),
		textsplitter.WithChunkOverlap(o.overlap),
		textsplitter.WithSeparators(Separators),
	)
	pieces, err := splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("failed to split text: %w", err)
	}

	for _, piece := range pieces {
		cleaned := Clean(piece)
		if cleaned == "" {
			continue
		}
		chunks = append(chunks, types.Chunk{Index: len(chunks), Text: cleaned})
	}
	return chunks, nil
}

// Clean collapses newlines, tabs and other whitespace runs into single spaces and trims.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
