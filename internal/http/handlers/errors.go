// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// These symbolic constants map to HTTP responses via the `fail()` helper and
// give clients a stable, machine-readable error taxonomy alongside the
// human-readable messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless noted.
//   - Generic codes mirror common HTTP status semantics.
//   - Domain-specific codes cover failures the status alone cannot convey,
//     e.g. upstream_unavailable when neither backend could serve a read.

package handlers

const (
	ErrCodeBadRequest  = "bad_request"
	ErrCodeNotFound    = "not_found"
	ErrCodeRateLimited = "too_many_requests"
	ErrCodeInternal    = "internal_error"

	// Domain-specific:
	ErrCodeListFailed       = "list_failed"
	ErrCodeUpstream         = "upstream_unavailable"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
