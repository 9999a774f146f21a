// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to HTTP responses shaped as {"error": "..."}

package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"news-summarizer-api/core/errors"
)

// ErrorBody is the single error shape the API returns
type ErrorBody struct {
	status  int
	Message string `json:"error" doc:"Human-readable error message" example:"No input provided. Paste a news article link or text."`
}

// Error implements the error interface
func (e *ErrorBody) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError
func (e *ErrorBody) GetStatus() int {
	return e.status
}

func init() {
	huma.NewError = newErrorBody
}

// newErrorBody replaces huma's problem+json model. Client errors keep their
// details so validation failures stay readable; server errors never do.
func newErrorBody(status int, msg string, errs ...error) huma.StatusError {
	if status < http.StatusInternalServerError {
		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}
		if len(details) > 0 {
			msg = msg + ": " + strings.Join(details, "; ")
		}
	}
	return &ErrorBody{status: status, Message: msg}
}

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsInput(err), errors.IsValidation(err):
		return huma.NewError(http.StatusBadRequest, rootMessage(err))
	case errors.IsPipeline(err):
		return huma.NewError(http.StatusInternalServerError, rootMessage(err))
	default:
		return huma.NewError(http.StatusInternalServerError, "Internal server error")
	}
}

// rootMessage returns the message of the typed domain error inside err,
// without any wrapping context added on the way up
func rootMessage(err error) string {
	var (
		inputErr      *errors.InputError
		validationErr *errors.ValidationError
		pipelineErr   *errors.PipelineError
	)
	switch {
	case stderrors.As(err, &inputErr):
		return inputErr.Error()
	case stderrors.As(err, &validationErr):
		return validationErr.Error()
	case stderrors.As(err, &pipelineErr):
		return pipelineErr.Error()
	}
	return err.Error()
}
