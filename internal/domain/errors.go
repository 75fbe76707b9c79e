package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Error types for domain-specific errors
type ErrorType string

const (
	// ErrorTypeCapability means a required library failed to initialize.
	ErrorTypeCapability ErrorType = "capability"
	// ErrorTypeValidation means the request was malformed or incomplete.
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeStorage means a filesystem failure while saving or writing.
	ErrorTypeStorage ErrorType = "storage"
	// ErrorTypeTransform means the document library raised during processing.
	ErrorTypeTransform ErrorType = "transform"
	// ErrorTypeNotFound means a required file part was absent.
	ErrorTypeNotFound ErrorType = "not_found"
)

// DomainError represents a domain-specific error with context
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new domain error
func NewError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func CapabilityError(message string, err error) *DomainError {
	return NewError(ErrorTypeCapability, message, err)
}

func ValidationError(message string, err error) *DomainError {
	return NewError(ErrorTypeValidation, message, err)
}

func StorageError(message string, err error) *DomainError {
	return NewError(ErrorTypeStorage, message, err)
}

func TransformError(message string, err error) *DomainError {
	return NewError(ErrorTypeTransform, message, err)
}

func NotFoundError(message string) *DomainError {
	return NewError(ErrorTypeNotFound, message, nil)
}

// TypeOf returns the error type of err, or an empty string for errors that
// did not originate in this taxonomy.
func TypeOf(err error) ErrorType {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type
	}
	return ""
}

// ClientMessage returns the message safe to send to the requester.
// Transform errors pass the library's message through; untagged errors
// collapse to a generic message so internals never leak.
func ClientMessage(err error) string {
	var de *DomainError
	if !errors.As(err, &de) {
		return "internal error"
	}
	if de.Err != nil && (de.Type == ErrorTypeTransform || de.Type == ErrorTypeValidation) {
		return fmt.Sprintf("%s: %v", de.Message, de.Err)
	}
	return de.Message
}

// HTTPStatus maps an error to a response status. Every tagged kind is
// recovered at the request boundary as a 400; only errors from outside the
// taxonomy are answered as server faults.
func HTTPStatus(err error) int {
	if TypeOf(err) == "" {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
