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
)

// NuevoAjuste builds the adjustment movement that forces an account ledger
// to match a physically verified balance. diferencia = saldoReal -
// saldoSistema; positive goes in as entrada, negative as salida. A zero
// difference returns (nil, ErrYaCuadrado) and nothing should be written.
func NuevoAjuste(cuentaID uuid.UUID, saldoSistema, saldoReal decimal.Decimal, operadorID uuid.UUID, ahora time.Time) (*model.MovimientoBanco, error) {
	diferencia := saldoReal.Sub(saldoSistema)
	if diferencia.IsZero() {
		return nil, ErrYaCuadrado
	}

	mov := &model.MovimientoBanco{
		CuentaID:   cuentaID,
		Fecha:      ahora,
		Entrada:    decimal.Zero,
		Salida:     decimal.Zero,
		OperadorID: operadorID,
		Descripcion: fmt.Sprintf("Ajuste de saldo generado por el sistema (%s)",
			ahora.Format("2006-01-02 15:04")),
	}
	if diferencia.GreaterThan(decimal.Zero) {
		mov.Entrada = diferencia
	} else {
		mov.Salida = diferencia.Abs()
	}
	return mov, nil
}

type AjusteService interface {
	// GenerarAjuste reads the account's current derived balance and records
	// one adjustment movement so the next read matches saldoReal.
	GenerarAjuste(ctx context.Context, operadorID uuid.UUID, req dto.AjusteRequest) (*dto.AjusteResponse, error)
}

type ajusteService struct {
	bancos repository.BancoRepository
	saldo  SaldoService
	ahora  func() time.Time
}

func NewAjusteService(bancos repository.BancoRepository, saldo SaldoService) AjusteService {
	return &ajusteService{bancos: bancos, saldo: saldo, ahora: time.Now}
}

func NewAjusteServiceAt(bancos repository.BancoRepository, saldo SaldoService, ahora func() time.Time) AjusteService {
	return &ajusteService{bancos: bancos, saldo: saldo, ahora: ahora}
}

func (s *ajusteService) GenerarAjuste(ctx context.Context, operadorID uuid.UUID, req dto.AjusteRequest) (*dto.AjusteResponse, error) {
	if req.SaldoReal == nil {
		return nil, fmt.Errorf("saldo_real es obligatorio")
	}
	saldoReal := *req.SaldoReal

	cuentaID, err := uuid.Parse(req.CuentaID)
	if err != nil {
		return nil, ErrReferenciaInvalida
	}

	saldoSistema, err := s.saldo.SaldoCuenta(ctx, cuentaID)
	if err != nil {
		return nil, err
	}

	mov, err := NuevoAjuste(cuentaID, saldoSistema, saldoReal, operadorID, s.ahora())
	if err != nil {
		return nil, err
	}
	if err := s.bancos.CreateMovimiento(ctx, nil, mov); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}

	return &dto.AjusteResponse{
		Movimiento:    *movimientoBancoToResponse(mov),
		SaldoAnterior: saldoSistema,
		SaldoNuevo:    saldoReal,
		Diferencia:    saldoReal.Sub(saldoSistema),
	}, nil
}
