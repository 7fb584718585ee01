package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGenerator struct {
	gotReq DraftRequest
	out    DraftResult
	err    error
}

func (g *fakeGenerator) Draft(_ context.Context, req DraftRequest) (DraftResult, error) {
	g.gotReq = req
	return g.out, g.err
}

func TestDraftService_TrimsInputs(t *testing.T) {
	g := &fakeGenerator{out: DraftResult{EmailDraft: "a draft"}}
	s := &DraftService{Generator: g}

	_, err := s.Draft(context.Background(), DraftRequest{
		BookingDetails:      "  Initial Consultation on Monday  ",
		SpecialInstructions: "\tarrive early\n",
	})
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if g.gotReq.BookingDetails != "Initial Consultation on Monday" {
		t.Errorf("details = %q; want trimmed", g.gotReq.BookingDetails)
	}
	if g.gotReq.SpecialInstructions != "arrive early" {
		t.Errorf("instructions = %q; want trimmed", g.gotReq.SpecialInstructions)
	}
}

func TestDraftService_EmptyOutputRejected(t *testing.T) {
	g := &fakeGenerator{out: DraftResult{EmailDraft: "   "}}
	s := &DraftService{Generator: g}

	_, err := s.Draft(context.Background(), DraftRequest{BookingDetails: "details"})
	if !errors.Is(err, ErrDraftUnavailable) {
		t.Fatalf("err = %v; want ErrDraftUnavailable", err)
	}
}

func TestDraftService_GeneratorErrorPropagates(t *testing.T) {
	boom := errors.New("model offline")
	g := &fakeGenerator{err: boom}
	s := &DraftService{Generator: g}

	_, err := s.Draft(context.Background(), DraftRequest{BookingDetails: "details"})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v; want the generator error", err)
	}
}

func TestLocalComposer(t *testing.T) {
	s := NewDraftService()

	res, err := s.Draft(context.Background(), DraftRequest{
		BookingDetails:      "Initial Consultation with Alice Johnson on Sep 1, 10:00",
		SpecialInstructions: "Please arrive 10 minutes early.",
	})
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if !strings.Contains(res.EmailDraft, "Initial Consultation with Alice Johnson") {
		t.Errorf("draft missing booking details:\n%s", res.EmailDraft)
	}
	if !strings.Contains(res.EmailDraft, "Please arrive 10 minutes early.") {
		t.Errorf("draft missing special instructions:\n%s", res.EmailDraft)
	}

	// Deterministic: same input, same draft.
	again, err := s.Draft(context.Background(), DraftRequest{
		BookingDetails:      "Initial Consultation with Alice Johnson on Sep 1, 10:00",
		SpecialInstructions: "Please arrive 10 minutes early.",
	})
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if res.EmailDraft != again.EmailDraft {
		t.Errorf("draft not deterministic")
	}
}

func TestLocalComposer_NoInstructions(t *testing.T) {
	res, err := LocalComposer{}.Draft(context.Background(), DraftRequest{BookingDetails: "Follow-up on Friday"})
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if strings.Contains(res.EmailDraft, "A note from our team") {
		t.Errorf("draft includes the note section without instructions:\n%s", res.EmailDraft)
	}
}
