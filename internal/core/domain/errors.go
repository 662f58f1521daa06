// Package domain defines the core domain models for sfsession.
package domain

import (
	"errors"
	"fmt"
)

// AuthError represents an authentication failure with a structured error
// code and, where the failure came from the OAuth endpoint, the HTTP status
// that produced it.
type AuthError struct {
	Code    string // Error code (e.g., "SF-PROT-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Status  int    // HTTP status, 0 when not status-driven
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *AuthError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
// Two AuthErrors compare equal by code alone.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code, message string) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *AuthError) WithDetails(details string) *AuthError {
	return &AuthError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Status:  e.Status,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *AuthError) WithCause(cause error) *AuthError {
	return &AuthError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Status:  e.Status,
		Cause:   cause,
	}
}

// WithStatus returns a copy of the error tagged with an HTTP status.
func (e *AuthError) WithStatus(status int) *AuthError {
	return &AuthError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Status:  status,
		Cause:   e.Cause,
	}
}

// StatusOf extracts the HTTP status from an error if it is an AuthError.
// Returns 0 for non-AuthErrors and for errors without a status.
func StatusOf(err error) int {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

// ============================================================================
// Configuration Errors (CONF)
// ============================================================================

var (
	// ErrConfigMissing indicates a required configuration field is absent.
	ErrConfigMissing = NewAuthError("SF-CONF-1002", "missing required configuration field")

	// ErrConfigInvalid indicates a configuration field has an unusable value.
	ErrConfigInvalid = NewAuthError("SF-CONF-1001", "invalid configuration field")
)

// ============================================================================
// Transport Errors (XPRT)
// ============================================================================

var (
	// ErrRequestInterrupted indicates the request was canceled before completion.
	ErrRequestInterrupted = NewAuthError("SF-XPRT-4990", "request interrupted")

	// ErrRequestTimeout indicates the request exceeded its deadline.
	ErrRequestTimeout = NewAuthError("SF-XPRT-4080", "request timeout")

	// ErrTransportFailure indicates the transport failed to execute the request.
	ErrTransportFailure = NewAuthError("SF-XPRT-5020", "transport execution failure")
)

// ============================================================================
// Protocol Errors (PROT)
// ============================================================================

var (
	// ErrLoginRejected indicates the OAuth endpoint refused the credentials (HTTP 400).
	ErrLoginRejected = NewAuthError("SF-PROT-4000", "login rejected")

	// ErrLoginStatus indicates an unexpected HTTP status from the token endpoint.
	ErrLoginStatus = NewAuthError("SF-PROT-5000", "unexpected login status")

	// ErrLogoutStatus indicates a non-success HTTP status from the revoke endpoint.
	ErrLogoutStatus = NewAuthError("SF-PROT-5001", "unexpected logout status")
)

// ============================================================================
// Decode Errors (JSON)
// ============================================================================

var (
	// ErrDecodeToken indicates a malformed token payload on a success status.
	ErrDecodeToken = NewAuthError("SF-JSON-2000", "malformed token response")

	// ErrDecodeLoginError indicates a malformed error payload on a 400 status.
	ErrDecodeLoginError = NewAuthError("SF-JSON-2001", "malformed login error response")
)
