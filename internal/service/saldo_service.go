package service

import (
	"context"
	"fmt"
	"time"

	"corresponsal/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaldoService is the balance aggregator. Every balance is recomputed from
// stored movements on each call — there is no cached running balance, so
// correctness depends only on querying the right window: fecha >= the
// reference timestamp, never a calendar-day boundary.
type SaldoService interface {
	// SaldoCaja = base + Σ(monto * mult_caja) of the operator's movements
	// with fecha >= desde.
	SaldoCaja(ctx context.Context, operadorID uuid.UUID, base decimal.Decimal, desde time.Time) (decimal.Decimal, error)
	// SaldoCuenta = cuenta.SaldoInicial + Σ(entrada - salida) with
	// fecha >= cuenta.FechaReferencia.
	SaldoCuenta(ctx context.Context, cuentaID uuid.UUID) (decimal.Decimal, error)
	SaldoCuentaPorCodigo(ctx context.Context, codigo string) (decimal.Decimal, error)
}

type saldoService struct {
	movimientos repository.MovimientoRepository
	bancos      repository.BancoRepository
}

func NewSaldoService(movimientos repository.MovimientoRepository, bancos repository.BancoRepository) SaldoService {
	return &saldoService{movimientos: movimientos, bancos: bancos}
}

func (s *saldoService) SaldoCaja(ctx context.Context, operadorID uuid.UUID, base decimal.Decimal, desde time.Time) (decimal.Decimal, error) {
	suma, err := s.movimientos.SumEfectoCaja(ctx, operadorID, desde)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return base.Add(suma), nil
}

func (s *saldoService) SaldoCuenta(ctx context.Context, cuentaID uuid.UUID) (decimal.Decimal, error) {
	cuenta, err := s.bancos.FindCuentaByID(ctx, cuentaID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if cuenta == nil {
		return decimal.Zero, ErrReferenciaInvalida
	}
	neto, err := s.bancos.SumNeto(ctx, cuenta.ID, cuenta.FechaReferencia)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return cuenta.SaldoInicial.Add(neto), nil
}

func (s *saldoService) SaldoCuentaPorCodigo(ctx context.Context, codigo string) (decimal.Decimal, error) {
	cuenta, err := s.bancos.FindCuentaByCodigo(ctx, codigo)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if cuenta == nil {
		return decimal.Zero, ErrReferenciaInvalida
	}
	neto, err := s.bancos.SumNeto(ctx, cuenta.ID, cuenta.FechaReferencia)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return cuenta.SaldoInicial.Add(neto), nil
}
