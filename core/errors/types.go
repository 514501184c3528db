// ABOUTME: Error taxonomy for the core business logic
// ABOUTME: Two domain-visible kinds plus detail types used below the loader boundary

package errors

import (
	"errors"
	"fmt"
)

// Kind identifies one of the domain-visible failure kinds
type Kind string

const (
	// KindNone is reported for nil or foreign errors
	KindNone Kind = ""

	// KindConnectivity means the round trip did not complete
	KindConnectivity Kind = "connectivity"

	// KindInvalidData means the round trip completed but the response was unusable
	KindInvalidData Kind = "invalidData"
)

// Error is a domain-visible load failure. Only the two sentinels below exist.
type Error struct {
	Kind Kind
}

// Error implements the error interface
func (e *Error) Error() string {
	return "feed load failed: " + string(e.Kind)
}

var (
	// ErrConnectivity is returned when the transport could not complete the request
	ErrConnectivity = &Error{Kind: KindConnectivity}

	// ErrInvalidData is returned when status or payload validation failed
	ErrInvalidData = &Error{Kind: KindInvalidData}
)

// KindOf returns the domain kind carried by err, or KindNone
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindNone
}

// IsConnectivity checks if an error is the connectivity failure
func IsConnectivity(err error) bool {
	return KindOf(err) == KindConnectivity
}

// IsInvalidData checks if an error is the invalid-data failure
func IsInvalidData(err error) bool {
	return KindOf(err) == KindInvalidData
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// ValidationError describes why a payload was rejected
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ConnectivityError describes a failed round trip to URL
type ConnectivityError struct {
	URL   string
	Cause error
}

// Error implements the error interface
func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying cause
func (e *ConnectivityError) Unwrap() error {
	return e.Cause
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConnectivityDetail checks if an error is a ConnectivityError
func IsConnectivityDetail(err error) bool {
	var connErr *ConnectivityError
	return errors.As(err, &connErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
