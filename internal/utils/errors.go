package utils

import "errors"

// Common application errors used across services.
var (
	ErrCatalogUnavailable = errors.New("CATALOG_UNAVAILABLE")
	ErrProductNotFound    = errors.New("PRODUCT_NOT_FOUND")
	ErrPostNotFound       = errors.New("POST_NOT_FOUND")
	ErrInvalidSelection   = errors.New("INVALID_SELECTION")
	ErrInvalidSubmission  = errors.New("INVALID_SUBMISSION")
	ErrUpstreamFailure    = errors.New("UPSTREAM_FAILURE")
	ErrRelayNotConfigured = errors.New("RELAY_NOT_CONFIGURED")
)
