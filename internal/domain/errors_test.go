package domain

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrorTypeValidation, TypeOf(ValidationError("bad input", nil)))
	assert.Equal(t, ErrorTypeCapability, TypeOf(CapabilityError("missing", nil)))
	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))
	assert.Equal(t, ErrorType(""), TypeOf(nil))
}

func TestTypeOfWrapped(t *testing.T) {
	inner := StorageError("disk full", errors.New("ENOSPC"))
	wrapped := errors.Join(errors.New("outer"), inner)
	assert.Equal(t, ErrorTypeStorage, TypeOf(wrapped))
}

func TestClientMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation with cause", ValidationError("Invalid page range.", errors.New("empty")), "Invalid page range.: empty"},
		{"validation without cause", ValidationError("Invalid page range.", nil), "Invalid page range."},
		{"transform passes cause", TransformError("Merge failed", errors.New("corrupt xref")), "Merge failed: corrupt xref"},
		{"storage hides cause", StorageError("write failed", errors.New("/secret/path denied")), "write failed"},
		{"capability fixed message", CapabilityError("pdfcpu not installed. Required: github.com/pdfcpu/pdfcpu", nil), "pdfcpu not installed. Required: github.com/pdfcpu/pdfcpu"},
		{"untagged collapses", errors.New("sql: no rows"), "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientMessage(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ValidationError("bad", nil)))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(CapabilityError("missing", nil)))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NotFoundError("no file")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(TransformError("failed", nil)))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(StorageError("disk", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}
