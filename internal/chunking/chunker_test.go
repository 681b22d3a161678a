package chunking

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume(lines int) string {
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&sb, "Line %d:\tWorked on\tservice-%d with Go and Postgres  for team %d.\n", i, i, i%7)
		if i%10 == 9 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func TestChunk_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\t\n"} {
		chunks, err := Chunk(in)
		require.NoError(t, err)
		assert.NotNil(t, chunks)
		assert.Empty(t, chunks)
	}
}

func TestChunk_ShortInputSingleChunk(t *testing.T) {
	chunks, err := Chunk("Asha Rao\n\nasha@example.com\t+91 98765 43210")
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, "Asha Rao asha@example.com+91 98765 43210", chunks[0].Text)
}

func TestChunk_Properties(t *testing.T) {
	text := sampleResume(200)

	chunks, err := Chunk(text)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for i, c := range chunks {
		assert.Equal(t, i, c.Index, "indices must be contiguous")
		assert.NotEmpty(t, c.Text)
		assert.LessOrEqual(t, utf8.RuneCountInString(c.Text), DefaultSize)
		assert.NotContains(t, c.Text, "\n")
		assert.NotContains(t, c.Text, "\t")
		assert.NotContains(t, c.Text, "  ")
		assert.Equal(t, strings.TrimSpace(c.Text), c.Text)
	}
}

func TestChunk_CoversAllWords(t *testing.T) {
	text := sampleResume(120)

	chunks, err := Chunk(text, WithSize(300), WithOverlap(30))
	require.NoError(t, err)

	var joined strings.Builder
	for _, c := range chunks {
		joined.WriteString(c.Text)
		joined.WriteString(" ")
	}
	for i := 0; i < 120; i++ {
		assert.Contains(t, joined.String(), fmt.Sprintf("service-%d ", i))
	}
}

func TestChunk_InvalidOptions(t *testing.T) {
	_, err := Chunk("text", WithSize(0))
	assert.Error(t, err)

	_, err = Chunk("text", WithSize(100), WithOverlap(100))
	assert.Error(t, err)

	_, err = Chunk("text", WithOverlap(-1))
	assert.Error(t, err)
}

func TestClean(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"  \n\t ", ""},
		{"Senior\tEngineer", "Senior Engineer"},
		{"Go\t\tPython\nSQL", "Go Python SQL"},
		{"Acme Corp\nPune   India", "Acme Corp Pune India"},
		{"  already clean  ", "already clean"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Clean(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, Clean(got), "Clean must be idempotent")
		})
	}
}
