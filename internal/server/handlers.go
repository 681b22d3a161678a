package server

import (
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-parser/internal/ingestion"
)

// API metadata reported by GET /
const (
	APITitle       = "RESUME PARSER"
	APIDescription = "This API accepts resume and extract important details from it"
	APIVersion     = "1.0"
)

// HealthResponse is the body of GET /healthcheck
type HealthResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// InfoResponse is the body of GET /
type InfoResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

// handleParseResume validates the uploaded "resume" file, parses it and
// returns the normalized record
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	filename, data, err := readUpload(r)
	if err == nil {
		err = ingestion.ValidateUpload(filename, data)
	}
	if err != nil {
		logger.Warn().Err(err).Str("filename", filename).Msg("upload rejected")
		s.errorResponse(w, HTTPStatus(err))
		return
	}

	meta := ingestion.NewMetadata(filename, data)
	path, cleanup, err := writeTemp(meta.Extension, data)
	if err != nil {
		logger.Error().Err(err).Msg("failed to stage upload")
		s.errorResponse(w, http.StatusInternalServerError)
		return
	}
	defer cleanup()

	logger.Info().
		Str("filename", meta.Filename).
		Int("size_bytes", meta.SizeBytes).
		Str("sha256", meta.Hash).
		Msg("parsing upload")

	record, err := s.parser.Parse(r.Context(), path)
	if err != nil {
		logger.Error().Err(err).Msg("resume parsing failed")
		s.errorResponse(w, HTTPStatus(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleHealthcheck reports that the service is running
func (s *Server) handleHealthcheck(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{StatusCode: http.StatusOK, Message: "Service is running"})
}

// handleRoot returns the API metadata
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, InfoResponse{
		Title:       APITitle,
		Description: APIDescription,
		Version:     APIVersion,
	})
}

// readUpload returns the name and content of the multipart "resume" field
func readUpload(r *http.Request) (string, []byte, error) {
	file, header, err := r.FormFile("resume")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return "", nil, maxBytesErr
		}
		return "", nil, ingestion.ErrMissingFile
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return header.Filename, nil, err
	}
	return header.Filename, data, nil
}

// writeTemp stores data in its own temp file; cleanup removes it
func writeTemp(ext string, data []byte) (string, func(), error) {
	f, err := os.CreateTemp("", "resume-*."+ext)
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
