// Package services defines the business logic of the operations console:
// the data-access facade that routes between the upstream gateway and the
// in-process store, relation enrichment, mutation side effects, and the
// automation-suppression rule. This file centralizes common service-level
// error values so they can be consistently returned by service methods and
// checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import "errors"

var (
	// ErrEmptyBody is returned when a message is sent with no content after
	// trimming.
	ErrEmptyBody = errors.New("message body is empty")

	// ErrAutoSuppressed is returned when an automated message is refused
	// because a staff reply already exists on the conversation.
	ErrAutoSuppressed = errors.New("automated messaging suppressed for conversation")

	// ErrDraftUnavailable is returned when the drafting collaborator
	// produces no usable output.
	ErrDraftUnavailable = errors.New("email draft unavailable")
)
