// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors that the API layer maps onto HTTP statuses

package errors

import (
	"errors"
	"fmt"
)

// InputKind identifies why the caller's input could not be analyzed
type InputKind string

const (
	InputNone            InputKind = "no input"
	InputFetchFailed     InputKind = "fetch failed"
	InputEmptyExtraction InputKind = "empty extraction"
	InputTooShort        InputKind = "too short"
)

// InputError is a caller fault. The API answers 400.
type InputError struct {
	Kind   InputKind
	Detail string
	Err    error
}

// Error implements the error interface
func (e *InputError) Error() string {
	switch e.Kind {
	case InputNone:
		return "No input provided. Paste a news article link or text."
	case InputFetchFailed:
		return fmt.Sprintf("Failed to fetch article from the provided URL. This site may block bots, or the link is invalid. Error details: %s", e.Detail)
	case InputEmptyExtraction:
		return "Could not extract article text from the provided URL. Please check the link or try another article."
	case InputTooShort:
		return "Please provide more article text for analysis."
	default:
		return fmt.Sprintf("invalid input: %s", e.Kind)
	}
}

// Unwrap returns the underlying cause, if any
func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates an InputError without a cause
func NewInputError(kind InputKind) *InputError {
	return &InputError{Kind: kind}
}

// PipelineError is a server fault raised when summarization or classification
// failed in a way the clients did not absorb. The API answers 500.
type PipelineError struct {
	Stage  string
	Detail string
	// Stack is captured for logs and never shown to callers
	Stack string
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	return fmt.Sprintf("AI failed: %s", e.Detail)
}

// FetchError is returned by the article fetcher on any download or parse failure
type FetchError struct {
	URL   string
	Cause string
	Err   error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Cause, e.Err)
	}
	return e.Cause
}

// Unwrap returns the underlying cause, if any
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsInput checks if an error is an InputError
func IsInput(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// IsInputKind checks if an error is an InputError of the given kind
func IsInputKind(err error, kind InputKind) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr) && inputErr.Kind == kind
}

// IsPipeline checks if an error is a PipelineError
func IsPipeline(err error) bool {
	var pipelineErr *PipelineError
	return errors.As(err, &pipelineErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
