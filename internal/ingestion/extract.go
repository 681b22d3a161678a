// Package ingestion reads resume documents and validates uploads.
package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// TextExtractor turns a resume file into plain text
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// FileExtractor extracts text from PDF, DOCX and DOC files
type FileExtractor struct {
	// AntiwordPath is the antiword binary used for legacy .doc files
	AntiwordPath string
}

// NewFileExtractor returns an extractor using antiword from PATH
func NewFileExtractor() *FileExtractor {
	return &FileExtractor{AntiwordPath: "antiword"}
}

// ExtractText returns the cleaned text of the document at path.
// Unsupported extensions yield "" and no error.
func (e *FileExtractor) ExtractText(path string) (string, error) {
	var (
		text string
		err  error
	)

	switch Extension(path) {
	case "pdf":
		var data []byte
		if data, err = os.ReadFile(path); err == nil {
			text, err = ExtractPDFText(data)
		}
	case "docx":
		var data []byte
		if data, err = os.ReadFile(path); err == nil {
			text, err = ExtractDOCXText(data)
		}
	case "doc":
		text, err = e.extractDOC(path)
	default:
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if IsBinaryData(text) {
		return "", fmt.Errorf("extracted content from %s appears to be binary", path)
	}
	return CleanText(text), nil
}

// ExtractPDFText returns the plain text of every page, one page per paragraph
func ExtractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxBreak        = regexp.MustCompile(`<w:(br|cr)\s*/>`)
	docxTab          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// ExtractDOCXText returns the body text of a DOCX document with one line per paragraph
func ExtractDOCXText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxBreak.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, " ")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

func (e *FileExtractor) extractDOC(path string) (string, error) {
	bin := e.AntiwordPath
	if bin == "" {
		bin = "antiword"
	}

	out, err := exec.Command(bin, path).Output()
	if err != nil {
		return "", fmt.Errorf("DOC extraction requires %q: %w", bin, err)
	}
	return string(out), nil
}
