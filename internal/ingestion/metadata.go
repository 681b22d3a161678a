package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
	"time"
)

// Metadata describes one uploaded document
type Metadata struct {
	Filename  string `json:"filename"`
	Extension string `json:"extension"`
	SizeBytes int    `json:"size_bytes"`
	Timestamp string `json:"timestamp"` // RFC3339
	Hash      string `json:"hash"`      // SHA256 hex digest
}

// NewMetadata describes data uploaded as filename
func NewMetadata(filename string, data []byte) *Metadata {
	return &Metadata{
		Filename:  filepath.Base(filename),
		Extension: Extension(filename),
		SizeBytes: len(data),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(data),
	}
}

// Extension returns the lower-cased extension of filename without the dot
func Extension(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

func computeHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
