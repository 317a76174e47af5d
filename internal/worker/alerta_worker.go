package worker

// alerta_worker.go
// Processes invoice due-date alert jobs from QueueAlertas: loads the
// invoice, sends the alert email through the SMTP circuit breaker, and
// marks the invoice so the cron never enqueues it twice.

import (
	"context"
	"encoding/json"
	"fmt"

	"corresponsal/internal/infra"
	"corresponsal/internal/model"
	"corresponsal/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AlertaJobPayload is the job envelope sent to QueueAlertas.
type AlertaJobPayload struct {
	FacturaID string `json:"factura_id"`
}

type AlertaWorker struct {
	facturas repository.FacturaRepository
	mailer   *infra.Mailer
	cb       *infra.CircuitBreaker
	destino  string
}

func NewAlertaWorker(facturas repository.FacturaRepository, mailer *infra.Mailer, cb *infra.CircuitBreaker, destino string) *AlertaWorker {
	return &AlertaWorker{facturas: facturas, mailer: mailer, cb: cb, destino: destino}
}

func (w *AlertaWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload AlertaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("alerta_worker: invalid payload: %w", err)
	}
	id, err := uuid.Parse(payload.FacturaID)
	if err != nil {
		return fmt.Errorf("alerta_worker: invalid factura_id %q", payload.FacturaID)
	}

	f, err := w.facturas.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("alerta_worker: load factura: %w", err)
	}
	if f.Estado == model.FacturaPagada || f.AlertaEnviada {
		// Paid or already alerted between enqueue and processing.
		return nil
	}

	subject := fmt.Sprintf("Factura %s de %s vence el %s",
		f.NumeroFactura, f.Proveedor, f.FechaVencimiento.Format("02/01/2006"))
	body := fmt.Sprintf(
		"La factura %s del proveedor %s por $%s vence el %s.\nEstado actual: %s.",
		f.NumeroFactura, f.Proveedor, f.Monto.StringFixed(2),
		f.FechaVencimiento.Format("02/01/2006"), f.Estado)

	err = w.cb.Execute(func() error {
		return w.mailer.SendAlerta(w.destino, subject, body, "")
	})
	if err != nil {
		return fmt.Errorf("alerta_worker: send alert for %s: %w", f.NumeroFactura, err)
	}

	f.AlertaEnviada = true
	if err := w.facturas.Update(ctx, nil, f); err != nil {
		return fmt.Errorf("alerta_worker: mark alerted: %w", err)
	}
	log.Info().Str("factura", f.NumeroFactura).Msg("alerta_worker: due-date alert sent")
	return nil
}
