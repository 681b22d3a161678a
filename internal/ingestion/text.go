package ingestion

import (
	"regexp"
	"strings"
)

var (
	inlineSpace     = regexp.MustCompile(`[ \t\f\v]+`)
	excessiveBlanks = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted document text while keeping the paragraph
// and line breaks the chunker splits on: line endings become LF, inline
// whitespace runs collapse, trailing spaces go, and blank-line runs shrink to one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
	}

	result := strings.Join(lines, "\n")
	result = excessiveBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// IsBinaryData reports whether text looks like undecoded binary content,
// judged by the share of control characters in its first 512 bytes.
func IsBinaryData(content string) bool {
	if content == "" {
		return false
	}

	sample := content
	if len(sample) > 512 {
		sample = sample[:512]
	}

	control := 0
	for _, r := range sample {
		if r == 0 || (r < 32 && r != '\n' && r != '\r' && r != '\t') || r == '\uFFFD' {
			control++
		}
	}
	return float64(control)/float64(len(sample)) > 0.1
}
