package worker

// email_worker.go
// Processes generic email jobs from QueueEmail, e.g. a cierre report sent
// to the administrator with its PDF attached.

import (
	"context"
	"encoding/json"
	"fmt"

	"corresponsal/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail    string `json:"to_email"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	AttachPath string `json:"attach_path"`
}

type EmailWorker struct {
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
}

func NewEmailWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker) *EmailWorker {
	return &EmailWorker{mailer: mailer, cb: cb}
}

// Process sends the email, optionally with an attachment. The send goes
// through the SMTP circuit breaker; a returned error parks the job in the
// DLQ.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("email_worker: invalid payload: %w", err)
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email — skipping")
		return nil
	}

	err := w.cb.Execute(func() error {
		return w.mailer.SendAlerta(payload.ToEmail, payload.Subject, payload.Body, payload.AttachPath)
	})
	if err != nil {
		return fmt.Errorf("email_worker: send to %s: %w", payload.ToEmail, err)
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: email sent")
	return nil
}
