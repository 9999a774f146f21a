package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-summarizer-api/core/errors"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name            string
		input           error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "no input returns 400",
			input:           errors.NewInputError(errors.InputNone),
			expectedStatus:  400,
			expectedMessage: "No input provided. Paste a news article link or text.",
		},
		{
			name:            "too short returns 400",
			input:           errors.NewInputError(errors.InputTooShort),
			expectedStatus:  400,
			expectedMessage: "Please provide more article text for analysis.",
		},
		{
			name:            "fetch failure returns 400 with details",
			input:           &errors.InputError{Kind: errors.InputFetchFailed, Detail: "403 response from server"},
			expectedStatus:  400,
			expectedMessage: "Failed to fetch article from the provided URL. This site may block bots, or the link is invalid. Error details: 403 response from server",
		},
		{
			name:            "ValidationError returns 400",
			input:           &errors.ValidationError{Field: "user_feedback", Message: "must not be empty"},
			expectedStatus:  400,
			expectedMessage: "validation error on field 'user_feedback': must not be empty",
		},
		{
			name:            "wrapped ValidationError drops the wrapping context",
			input:           fmt.Errorf("submit: %w", &errors.ValidationError{Field: "user_feedback", Message: "is too long"}),
			expectedStatus:  400,
			expectedMessage: "validation error on field 'user_feedback': is too long",
		},
		{
			name:            "PipelineError returns 500 with its message",
			input:           &errors.PipelineError{Stage: "classify", Detail: "boom", Stack: "goroutine 1"},
			expectedStatus:  500,
			expectedMessage: "AI failed: boom",
		},
		{
			name:            "unknown error returns 500 without leaking",
			input:           fmt.Errorf("pq: password authentication failed"),
			expectedStatus:  500,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			body, ok := result.(*ErrorBody)
			require.True(t, ok, "expected *ErrorBody, got %T", result)
			assert.Equal(t, tt.expectedStatus, body.GetStatus())
			assert.Equal(t, tt.expectedMessage, body.Message)
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.Nil(t, toHumaError(nil))
}

func TestNewError_IsOverridden(t *testing.T) {
	err := huma.Error422UnprocessableEntity("validation failed", fmt.Errorf("expected string"))

	body, ok := err.(*ErrorBody)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, body.GetStatus())
	assert.Equal(t, "validation failed: expected string", body.Message)

	data, jsonErr := json.Marshal(body)
	require.NoError(t, jsonErr)
	assert.JSONEq(t, `{"error":"validation failed: expected string"}`, string(data))
}

func TestNewError_ServerErrorsHideDetails(t *testing.T) {
	err := huma.Error500InternalServerError("Internal server error", fmt.Errorf("secret dsn"))

	assert.Equal(t, "Internal server error", err.Error())
}
