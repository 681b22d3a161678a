package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"line endings", "Asha Rao\r\nPune\rIndia", "Asha Rao\nPune\nIndia"},
		{"inline whitespace", "Senior   Engineer\t\tAcme", "Senior Engineer Acme"},
		{"trailing spaces", "Acme Corp   \n  2019 - 2021  ", "Acme Corp\n2019 - 2021"},
		{"blank line runs", "Experience\n\n\n\n\nEducation", "Experience\n\nEducation"},
		{"non-breaking space", "B.Tech\u00a0CSE", "B.Tech CSE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanText(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, CleanText(got))
		})
	}
}

func TestIsBinaryData(t *testing.T) {
	assert.False(t, IsBinaryData(""))
	assert.False(t, IsBinaryData("Asha Rao\nSenior Engineer\tAcme"))
	assert.True(t, IsBinaryData(strings.Repeat("\x00\x01\x02abc", 50)))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "pdf", Extension("resume.PDF"))
	assert.Equal(t, "docx", Extension("/tmp/uploads/cv.final.docx"))
	assert.Equal(t, "", Extension("resume"))
}

func TestNewMetadata(t *testing.T) {
	m := NewMetadata("/tmp/x/Resume.Docx", []byte("abc"))

	assert.Equal(t, "Resume.Docx", m.Filename)
	assert.Equal(t, "docx", m.Extension)
	assert.Equal(t, 3, m.SizeBytes)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", m.Hash)
	assert.NotEmpty(t, m.Timestamp)
}
