package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-parser/internal/ingestion"
)

// errorMessages are the client-facing messages for each status code
var errorMessages = map[int]string{
	http.StatusBadRequest:           "Missing File Upload - No file has been uploaded. Please ensure that you upload the required file and try again to proceed with the processing",
	http.StatusUnauthorized:         "Unauthorized - The request you made is not authorized. Please ensure that you have the necessary permissions to access the resource, and try again to proceed with the processing",
	http.StatusPaymentRequired:      "Subscription Plan Limit Reached - You have reached the maximum limit for your current subscription plan, consider upgrading to a higher-tier plan",
	http.StatusNotAcceptable:        "Not Acceptable - The request you made is not acceptable. Please ensure that the request meets the required criteria and try again to proceed with the processing",
	http.StatusUnsupportedMediaType: "File Format Not Supported - The file you uploaded is in an unsupported format. Please upload a file in a valid format, such as PDF, ensuring that it is neither corrupted nor incomplete for processing to proceed",
	http.StatusUnprocessableEntity:  "Corrupted or Damaged File - The document you uploaded appears to be corrupted or unreadable. Please upload a valid, non-corrupted file (e.g., PDF, DOC, or DOCX) that can be properly parsed.",
	http.StatusInternalServerError:  "Unexpected Error - An unexpected error has occurred while processing your resume. Please try again later, and if the problem persists, consider reaching out to technical support for further assistance",
	http.StatusServiceUnavailable:   "Service Unavailable - A network issue has occurred that prevents the processing of your request. Please try again later, and if the problem persists, consider reaching out to technical support for further assistance",
}

// ErrorMessage returns the message for a status code, or "Unknown Error"
func ErrorMessage(status int) string {
	if msg, ok := errorMessages[status]; ok {
		return msg
	}
	return "Unknown Error"
}

// ErrorDetail is the body of every error response
type ErrorDetail struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// ErrorResponse wraps ErrorDetail under "detail"
type ErrorResponse struct {
	Detail ErrorDetail `json:"detail"`
}

// APIError is an error that maps to a fixed HTTP status
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, ErrorMessage(e.StatusCode))
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var apiErr *APIError
	var maxBytesErr *http.MaxBytesError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &apiErr):
		return apiErr.StatusCode
	case errors.Is(err, ingestion.ErrMissingFile):
		return http.StatusBadRequest
	case errors.Is(err, ingestion.ErrUnsupportedFileType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ingestion.ErrCorruptedFile):
		return http.StatusUnprocessableEntity
	case errors.As(err, &maxBytesErr):
		return http.StatusNotAcceptable
	default:
		return http.StatusInternalServerError
	}
}
