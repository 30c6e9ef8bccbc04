package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatusCodes(t *testing.T) {
	cases := []struct {
		err  *AppError
		code string
		http int
	}{
		{Validation("bad input"), CodeValidation, http.StatusBadRequest},
		{NotFound("venue", "abc"), CodeNotFound, http.StatusNotFound},
		{Conflict("taken"), CodeConflict, http.StatusConflict},
		{ExternalService("down", nil), CodeExternalService, http.StatusBadGateway},
		{Persistence("write failed", nil), CodePersistence, http.StatusInternalServerError},
		{Unauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{Forbidden("not yours"), CodeForbidden, http.StatusForbidden},
		{Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.http, tc.err.StatusCode())
	}
}

func TestFromUnwrapsWrappedAppError(t *testing.T) {
	inner := Conflict("venue is busy")
	wrapped := fmt.Errorf("creating booking: %w", inner)

	got := From(wrapped)
	assert.Equal(t, CodeConflict, got.Code)
	assert.True(t, IsKind(wrapped, CodeConflict))
	assert.False(t, IsKind(wrapped, CodeNotFound))
}

func TestFromWrapsForeignErrors(t *testing.T) {
	plain := errors.New("dial tcp: connection refused")

	got := From(plain)
	assert.Equal(t, CodeInternal, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.StatusCode())
	assert.ErrorIs(t, got, plain)
}

func TestNotFoundMessageNamesTheResource(t *testing.T) {
	err := NotFound("booking", "123")
	assert.Contains(t, err.Message, "booking")
	assert.Equal(t, "123", err.Details["id"])
}
