package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeConflict     ErrorCode = "CONFLICT"

	// Resource specific errors
	CodeQuizNotFound     ErrorCode = "QUIZ_NOT_FOUND"
	CodeCourseNotFound   ErrorCode = "COURSE_NOT_FOUND"
	CodeDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"

	// AI quiz generation errors
	CodeAIConfiguration ErrorCode = "AI_CONFIGURATION_ERROR"
	CodeAIUpstream      ErrorCode = "AI_UPSTREAM_ERROR"
	CodeAIExtraction    ErrorCode = "AI_EXTRACTION_ERROR"
	CodePDFExtraction   ErrorCode = "PDF_EXTRACTION_ERROR"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
)

// rawPreviewLimit bounds the raw model output echoed back in extraction errors.
const rawPreviewLimit = 500

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a diagnostic key/value rendered in error responses.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewConflictError(message string) *DomainError {
	return NewError(CodeConflict, message, nil)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, "Quiz not found", nil).WithContext("quiz_id", quizID)
}

func NewCourseNotFoundError(courseID string) *DomainError {
	return NewError(CodeCourseNotFound, "Course not found", nil).WithContext("course_id", courseID)
}

func NewDocumentNotFoundError(message string) *DomainError {
	return NewError(CodeDocumentNotFound, message, nil)
}

func NewPDFExtractionError(message string, cause error) *DomainError {
	return NewError(CodePDFExtraction, message, cause)
}

// NewAIConfigurationError reports missing credentials for the chat model.
func NewAIConfigurationError(message string) *DomainError {
	return NewError(CodeAIConfiguration, message, nil)
}

// NewAIUpstreamError reports a failed call to the chat model provider.
// status is the HTTP status returned by the provider, or 0 for transport failures.
func NewAIUpstreamError(status int, cause error) *DomainError {
	message := "AI request failed"
	if status > 0 {
		message = fmt.Sprintf("AI request failed with status %d", status)
	}
	return NewError(CodeAIUpstream, message, cause).WithContext("upstream_status", status)
}

// NewAIExtractionError reports that no quiz could be recovered from the model reply.
func NewAIExtractionError(cause error, raw string) *DomainError {
	reason := "no JSON found"
	if cause != nil {
		reason = cause.Error()
	}
	message := fmt.Sprintf("Failed to parse quiz data from AI response: %s | Raw: %s", reason, truncateRunes(raw, rawPreviewLimit))
	return NewError(CodeAIExtraction, message, nil)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
