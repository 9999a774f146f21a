package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestInputError_Messages(t *testing.T) {
	tests := []struct {
		kind     InputKind
		detail   string
		contains string
	}{
		{InputNone, "", "No input provided"},
		{InputFetchFailed, "dial tcp: timeout", "Error details: dial tcp: timeout"},
		{InputEmptyExtraction, "", "Could not extract article text"},
		{InputTooShort, "", "Please provide more article text"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := &InputError{Kind: tt.kind, Detail: tt.detail}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("InputError.Error() = %q, want it to contain %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestInputError_UnwrapsFetchError(t *testing.T) {
	fetchErr := &FetchError{URL: "https://example.com", Cause: "download failed", Err: errors.New("403")}
	err := &InputError{Kind: InputFetchFailed, Detail: fetchErr.Error(), Err: fetchErr}

	if !IsFetch(err) {
		t.Error("IsFetch should see through InputError")
	}
	if !IsInputKind(err, InputFetchFailed) {
		t.Error("IsInputKind should match fetch failed")
	}
	if IsInputKind(err, InputTooShort) {
		t.Error("IsInputKind should not match a different kind")
	}
}

func TestPipelineError_Error(t *testing.T) {
	err := &PipelineError{Stage: "summarize", Detail: "boom"}

	expected := "AI failed: boom"
	if err.Error() != expected {
		t.Errorf("PipelineError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestFetchError_Error(t *testing.T) {
	err := &FetchError{Cause: "unexpected status 403"}
	if err.Error() != "unexpected status 403" {
		t.Errorf("FetchError.Error() = %v", err.Error())
	}

	wrapped := &FetchError{Cause: "download failed", Err: errors.New("connection refused")}
	if wrapped.Error() != "download failed: connection refused" {
		t.Errorf("FetchError.Error() = %v", wrapped.Error())
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "user_feedback",
		Message: "must not be empty",
	}

	expected := "validation error on field 'user_feedback': must not be empty"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsHelpers_WrappedErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"wrapped input", fmt.Errorf("ctx: %w", NewInputError(InputNone)), IsInput, true},
		{"wrapped pipeline", fmt.Errorf("ctx: %w", &PipelineError{}), IsPipeline, true},
		{"wrapped fetch", WrapError(&FetchError{URL: "https://x"}, "download"), IsFetch, true},
		{"wrapped validation", WrapError(&ValidationError{}, "check"), IsValidation, true},
		{"plain error is not input", errors.New("x"), IsInput, false},
		{"nil is not pipeline", nil, IsPipeline, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	if WrapError(nil, "msg") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}
