// Package services – email drafting collaborator.
//
// Drafting is an external black box to the data layer: it consumes a
// plain-text booking summary plus optional instructions and hands back a
// plain-text draft. No retry or timeout contract is imposed here.
package services

import (
	"context"
	"strings"
)

// DraftRequest is the input handed to the drafting collaborator.
type DraftRequest struct {
	BookingDetails      string
	SpecialInstructions string
}

// DraftResult carries the produced draft.
type DraftResult struct {
	EmailDraft string `json:"email_draft"`
}

// DraftGenerator produces an email draft for a booking summary.
// Implementations may call out to a hosted model; the default composes a
// deterministic draft locally.
type DraftGenerator interface {
	Draft(ctx context.Context, req DraftRequest) (DraftResult, error)
}

// DraftService fronts the generator and normalizes its inputs/outputs.
type DraftService struct {
	Generator DraftGenerator
}

// NewDraftService constructs a DraftService with the local composer.
func NewDraftService() *DraftService {
	return &DraftService{Generator: LocalComposer{}}
}

// Draft trims inputs, invokes the generator, and rejects empty output.
func (s *DraftService) Draft(ctx context.Context, req DraftRequest) (DraftResult, error) {
	req.BookingDetails = strings.TrimSpace(req.BookingDetails)
	req.SpecialInstructions = strings.TrimSpace(req.SpecialInstructions)

	res, err := s.Generator.Draft(ctx, req)
	if err != nil {
		return DraftResult{}, err
	}
	if strings.TrimSpace(res.EmailDraft) == "" {
		return DraftResult{}, ErrDraftUnavailable
	}
	return res, nil
}

// LocalComposer is the default generator: a deterministic plain-text
// composer, good enough for offline/demo mode.
type LocalComposer struct{}

// Draft assembles a confirmation email around the booking summary.
func (LocalComposer) Draft(_ context.Context, req DraftRequest) (DraftResult, error) {
	var b strings.Builder
	b.WriteString("Hello,\n\n")
	b.WriteString("Thank you for booking with us. Here are your appointment details:\n\n")
	b.WriteString(req.BookingDetails)
	b.WriteString("\n")
	if req.SpecialInstructions != "" {
		b.WriteString("\nA note from our team:\n")
		b.WriteString(req.SpecialInstructions)
		b.WriteString("\n")
	}
	b.WriteString("\nIf anything needs to change, just reply to this email.\n\nBest regards,\nThe team")
	return DraftResult{EmailDraft: b.String()}, nil
}
