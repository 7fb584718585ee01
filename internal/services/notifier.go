// Package services – notification collaborator.
package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// Notifier receives the confirmation trigger fired when a public form
// response is recorded locally. Formatting and delivery are outside this
// module's contract.
type Notifier interface {
	FormReceived(ctx context.Context, r domain.FormResponse)
}

// LogNotifier is the default Notifier: it records the trigger in the
// structured log, standing in for an email sender.
type LogNotifier struct{}

// FormReceived logs the recorded response and the address a confirmation
// would go to.
func (LogNotifier) FormReceived(ctx context.Context, r domain.FormResponse) {
	log.Info().
		Int("form_response_id", r.ID).
		Str("email", r.Email).
		Msg("form response recorded; confirmation queued")
}
