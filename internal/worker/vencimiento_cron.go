package worker

// vencimiento_cron.go
// Periodic sweep over purchase invoices: flips pendiente → vencida past the
// due date and enqueues one alert job per invoice entering the look-ahead
// window. The alert worker marks alerta_enviada after a successful send, so
// an invoice whose email failed is picked up again on the next tick.

import (
	"context"
	"time"

	"corresponsal/internal/repository"

	"github.com/rs/zerolog/log"
)

type VencimientoCron struct {
	facturas   repository.FacturaRepository
	dispatcher *Dispatcher
	diasAviso  int
	intervalo  time.Duration
}

func NewVencimientoCron(facturas repository.FacturaRepository, dispatcher *Dispatcher, diasAviso int, intervalo time.Duration) *VencimientoCron {
	if diasAviso <= 0 {
		diasAviso = 3
	}
	if intervalo <= 0 {
		intervalo = time.Hour
	}
	return &VencimientoCron{
		facturas:   facturas,
		dispatcher: dispatcher,
		diasAviso:  diasAviso,
		intervalo:  intervalo,
	}
}

// Start blocks until ctx is cancelled; run it in its own goroutine.
// The first sweep fires immediately so a restart never delays alerts by a
// full interval.
func (c *VencimientoCron) Start(ctx context.Context) {
	log.Info().
		Int("dias_aviso", c.diasAviso).
		Dur("intervalo", c.intervalo).
		Msg("vencimiento cron started")

	c.sweep(ctx)

	ticker := time.NewTicker(c.intervalo)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("vencimiento cron shutting down")
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *VencimientoCron) sweep(ctx context.Context) {
	ahora := time.Now()

	vencidas, err := c.facturas.MarcarVencidas(ctx, ahora)
	if err != nil {
		log.Error().Err(err).Msg("vencimiento cron: marcar vencidas")
	} else if vencidas > 0 {
		log.Info().Int64("facturas", vencidas).Msg("vencimiento cron: invoices marked overdue")
	}

	hasta := ahora.AddDate(0, 0, c.diasAviso)
	porVencer, err := c.facturas.ListPorVencer(ctx, hasta, 200)
	if err != nil {
		log.Error().Err(err).Msg("vencimiento cron: list por vencer")
		return
	}
	for i := range porVencer {
		payload := AlertaJobPayload{FacturaID: porVencer[i].ID.String()}
		if err := c.dispatcher.EnqueueAlerta(ctx, payload); err != nil {
			log.Error().Err(err).Str("factura", porVencer[i].NumeroFactura).
				Msg("vencimiento cron: enqueue alert")
		}
	}
	if len(porVencer) > 0 {
		log.Info().Int("alertas", len(porVencer)).Msg("vencimiento cron: alerts enqueued")
	}
}
