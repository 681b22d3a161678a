package ingestion

import (
	"bytes"
	"errors"
	"slices"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// AllowedExtensions are the accepted resume formats
var AllowedExtensions = []string{"pdf", "doc", "docx"}

// Upload validation errors
var (
	ErrMissingFile         = errors.New("no file uploaded")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrCorruptedFile       = errors.New("file content is unreadable")
)

// oleMagic starts every legacy Word (.doc) compound file
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// ValidateUpload checks that filename has an accepted extension and that
// data actually opens as that format.
func ValidateUpload(filename string, data []byte) error {
	if filename == "" {
		return ErrMissingFile
	}

	ext := Extension(filename)
	if !slices.Contains(AllowedExtensions, ext) {
		return ErrUnsupportedFileType
	}
	if len(data) == 0 {
		return ErrCorruptedFile
	}

	switch ext {
	case "pdf":
		if _, err := pdf.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
			return ErrCorruptedFile
		}
	case "docx":
		doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return ErrCorruptedFile
		}
		_ = doc.Close()
	case "doc":
		if !bytes.HasPrefix(data, oleMagic) {
			return ErrCorruptedFile
		}
	}
	return nil
}
