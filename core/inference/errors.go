// ABOUTME: Tagged error kinds for remote inference failures
// ABOUTME: Adapters classify upstream responses once; clients derive messages from the tag

package inference

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind tags why an inference call failed
type Kind string

const (
	KindMissingCredentials Kind = "missing_credentials"
	KindUnauthorized       Kind = "unauthorized"
	KindRateLimited        Kind = "rate_limited"
	KindLoading            Kind = "loading"
	KindMalformed          Kind = "malformed"
	KindHTTP               Kind = "http"
	KindTimeout            Kind = "timeout"
	KindOther              Kind = "other"
)

// Error is the failure shape every capability adapter returns
type Error struct {
	Kind       Kind
	StatusCode int    // set for KindHTTP and status-derived kinds
	Message    string // upstream message, if any
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the tag from any error a capability returned. Untagged
// deadline errors count as timeouts; everything else is KindOther.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var infErr *Error
	if errors.As(err, &infErr) {
		return infErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindOther
}

// statusOf returns the HTTP status carried by err, or 0
func statusOf(err error) int {
	var infErr *Error
	if errors.As(err, &infErr) {
		return infErr.StatusCode
	}
	return 0
}
