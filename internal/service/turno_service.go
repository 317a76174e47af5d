package service

import (
	"context"
	"fmt"
	"time"

	"corresponsal/internal/dto"
	"corresponsal/internal/model"
	"corresponsal/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TurnoService interface {
	Abrir(ctx context.Context, operadorID uuid.UUID, baseInicial decimal.Decimal) (*dto.TurnoResponse, error)
	Cerrar(ctx context.Context, operadorID uuid.UUID, montoContado decimal.Decimal) (*dto.TurnoResponse, error)
	Reabrir(ctx context.Context, operadorID uuid.UUID) (*dto.TurnoResponse, error)
	// Actual returns the operator's current shift view; estado "sin_apertura"
	// when no row exists for today.
	Actual(ctx context.Context, operadorID uuid.UUID) (*dto.TurnoResponse, error)
	Historial(ctx context.Context, page, limit int) ([]dto.TurnoResponse, int64, error)
}

type turnoService struct {
	repo  repository.TurnoRepository
	saldo SaldoService
	ahora func() time.Time
}

func NewTurnoService(repo repository.TurnoRepository, saldo SaldoService) TurnoService {
	return &turnoService{repo: repo, saldo: saldo, ahora: time.Now}
}

// NewTurnoServiceAt injects a clock, for tests that need deterministic days.
func NewTurnoServiceAt(repo repository.TurnoRepository, saldo SaldoService, ahora func() time.Time) TurnoService {
	return &turnoService{repo: repo, saldo: saldo, ahora: ahora}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Abrir ─────────────────────────────────────────────────────────────────────
// Precondition: no turno abierto for today. A stale turno abierto from a
// prior date is force-closed first (contado := calculado, diferencia 0,
// estado cerrado_auto) so a forgotten close never blocks today's operation;
// stale close and new open commit in one transaction.

func (s *turnoService) Abrir(ctx context.Context, operadorID uuid.UUID, baseInicial decimal.Decimal) (*dto.TurnoResponse, error) {
	// A zero base (empty drawer) is legal; a negative one is not.
	if baseInicial.IsNegative() {
		return nil, ErrMontoInvalido
	}
	ahora := s.ahora()

	abierto, err := s.repo.FindAbierto(ctx, operadorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if abierto != nil && mismaFecha(abierto.Fecha, ahora) {
		return nil, ErrTurnoYaAbierto
	}

	var saldoViejo decimal.Decimal
	if abierto != nil {
		// Balance of the stale shift, from its own opening timestamp.
		saldoViejo, err = s.saldo.SaldoCaja(ctx, operadorID, abierto.BaseInicial, abierto.AbiertoEn)
		if err != nil {
			return nil, err
		}
	}

	nuevo := &model.Turno{
		OperadorID:  operadorID,
		Fecha:       diaDe(ahora),
		AbiertoEn:   ahora,
		BaseInicial: baseInicial,
		Estado:      model.TurnoAbierto,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if abierto != nil {
			cierre := ahora
			contado := saldoViejo
			cero := decimal.Zero
			abierto.Estado = model.TurnoCerradoAuto
			abierto.CerradoEn = &cierre
			abierto.SaldoCalculado = &saldoViejo
			abierto.MontoContado = &contado
			abierto.Diferencia = &cero
			if err := s.repo.Update(ctx, tx, abierto); err != nil {
				return err
			}
		}
		return s.repo.Create(ctx, tx, nuevo)
	})
	if txErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, txErr)
	}

	return turnoToResponse(nuevo), nil
}

// ── Cerrar ────────────────────────────────────────────────────────────────────
// SaldoCalculado = baseInicial + Σ(signed movements with fecha >= AbiertoEn).
// Always the opening timestamp, never start-of-day: after a same-day
// auto-close/reopen cycle the two windows differ.

func (s *turnoService) Cerrar(ctx context.Context, operadorID uuid.UUID, montoContado decimal.Decimal) (*dto.TurnoResponse, error) {
	// A physical count of zero is valid; a negative count is not a count.
	if montoContado.IsNegative() {
		return nil, ErrMontoInvalido
	}
	ahora := s.ahora()

	turno, err := s.repo.FindAbierto(ctx, operadorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if turno == nil || !mismaFecha(turno.Fecha, ahora) {
		return nil, ErrSinTurnoAbierto
	}

	calculado, err := s.saldo.SaldoCaja(ctx, operadorID, turno.BaseInicial, turno.AbiertoEn)
	if err != nil {
		return nil, err
	}
	diferencia := montoContado.Sub(calculado)

	turno.Estado = model.TurnoCerrado
	turno.CerradoEn = &ahora
	turno.SaldoCalculado = &calculado
	turno.MontoContado = &montoContado
	turno.Diferencia = &diferencia

	if err := s.repo.Update(ctx, nil, turno); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return turnoToResponse(turno), nil
}

// ── Reabrir ───────────────────────────────────────────────────────────────────
// Operator-recoverable undo for a premature close: close fields reset, estado
// back to abierto. AbiertoEn is untouched so a later Cerrar recomputes from
// the original opening timestamp. cerrado_auto is terminal and stays closed.

func (s *turnoService) Reabrir(ctx context.Context, operadorID uuid.UUID) (*dto.TurnoResponse, error) {
	ahora := s.ahora()

	turno, err := s.repo.FindUltimoDelDia(ctx, operadorID, ahora)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if turno == nil {
		return nil, ErrReferenciaInvalida
	}
	if turno.Estado != model.TurnoCerrado {
		return nil, fmt.Errorf("solo un turno cerrado manualmente puede reabrirse (estado actual: %s)", turno.Estado)
	}

	turno.Estado = model.TurnoAbierto
	turno.CerradoEn = nil
	turno.SaldoCalculado = nil
	turno.MontoContado = nil
	turno.Diferencia = nil

	if err := s.repo.Update(ctx, nil, turno); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return turnoToResponse(turno), nil
}

// ── Actual ────────────────────────────────────────────────────────────────────

func (s *turnoService) Actual(ctx context.Context, operadorID uuid.UUID) (*dto.TurnoResponse, error) {
	turno, err := s.repo.FindUltimoDelDia(ctx, operadorID, s.ahora())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if turno == nil {
		return &dto.TurnoResponse{Estado: "sin_apertura"}, nil
	}
	return turnoToResponse(turno), nil
}

func (s *turnoService) Historial(ctx context.Context, page, limit int) ([]dto.TurnoResponse, int64, error) {
	turnos, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	out := make([]dto.TurnoResponse, 0, len(turnos))
	for i := range turnos {
		out = append(out, *turnoToResponse(&turnos[i]))
	}
	return out, total, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// diaDe truncates a timestamp to its local calendar day.
func diaDe(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func turnoToResponse(t *model.Turno) *dto.TurnoResponse {
	resp := &dto.TurnoResponse{
		ID:          t.ID.String(),
		OperadorID:  t.OperadorID.String(),
		Fecha:       t.Fecha.Format("2006-01-02"),
		AbiertoEn:   t.AbiertoEn.Format(time.RFC3339),
		BaseInicial: t.BaseInicial,
		Estado:      t.Estado,
	}
	if t.CerradoEn != nil {
		s := t.CerradoEn.Format(time.RFC3339)
		resp.CerradoEn = &s
	}
	resp.SaldoCalculado = t.SaldoCalculado
	resp.MontoContado = t.MontoContado
	resp.Diferencia = t.Diferencia
	return resp
}
