package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	err := New(CodeValidation, "age out of range")
	assert.True(t, HasCode(err, CodeValidation))
	assert.False(t, HasCode(err, CodeNotFound))

	wrapped := fmt.Errorf("dispatch failed: %w", err)
	assert.True(t, HasCode(wrapped, CodeValidation))

	assert.False(t, HasCode(errors.New("plain"), CodeValidation))
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain failure")))
	assert.Equal(t, CodeNotFound, CodeOf(New(CodeNotFound, "missing")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("divide by zero")
	err := Wrap(cause, CodeInternal, "score computation failed")

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "divide by zero")
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "invalid parameters").WithDetails(map[string]any{
		"fields": []string{"age"},
	})
	details := DetailsOf(err)
	require.NotNil(t, details)
	assert.Equal(t, []string{"age"}, details["fields"])
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, ToHTTPStatus(CodeValidation))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeBadRequest))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(Code("unknown")))
}
