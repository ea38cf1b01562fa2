package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ValidationError("bad").HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NotFoundError("missing").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, InternalError("boom", nil).HTTPStatus())
}

func TestError_MessageFormatting(t *testing.T) {
	plain := NotFoundError("Appointment not found")
	assert.Equal(t, "not_found: Appointment not found", plain.Error())

	wrapped := InternalError("store failed", fmt.Errorf("disk full"))
	assert.Equal(t, "internal: store failed: disk full", wrapped.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := InternalError("wrapper", cause)

	assert.ErrorIs(t, err, cause)
}

func TestToResponse_OnlyErrorField(t *testing.T) {
	err := NotFoundError("Appointment not found").WithField("appointment_id", 99)

	resp := err.ToResponse()
	assert.Equal(t, ErrorResponse{Error: "Appointment not found"}, resp)
}

func TestAsStructuredError(t *testing.T) {
	structured := ValidationError("invalid")
	assert.Same(t, structured, AsStructuredError(structured))

	wrapped := AsStructuredError(errors.New("plain"))
	require.NotNil(t, wrapped)
	assert.Equal(t, TypeInternal, wrapped.Type)

	assert.Nil(t, AsStructuredError(nil))
}
