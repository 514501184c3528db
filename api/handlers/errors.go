// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"essential-feed-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

const (
	msgConnectivity = "Feed source could not be reached"
	msgInvalidData  = "Feed source returned invalid data"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	// Both load failures are upstream problems
	switch errors.KindOf(err) {
	case errors.KindConnectivity:
		return huma.Error502BadGateway(msgConnectivity)
	case errors.KindInvalidData:
		return huma.Error502BadGateway(msgInvalidData)
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
