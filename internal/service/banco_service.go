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

type BancoService interface {
	ListarCuentas(ctx context.Context) ([]dto.CuentaResponse, error)
	Saldo(ctx context.Context, cuentaID uuid.UUID) (*dto.SaldoCuentaResponse, error)
	// RegistrarMovimiento records an entrada or salida on the account ledger.
	// Exactly one of the two columns is non-zero.
	RegistrarMovimiento(ctx context.Context, operadorID uuid.UUID, req dto.RegistrarMovimientoBancoRequest) (*dto.MovimientoBancoResponse, error)
	ActualizarMovimiento(ctx context.Context, id uuid.UUID, req dto.ActualizarMovimientoBancoRequest) (*dto.MovimientoBancoResponse, error)
	EliminarMovimiento(ctx context.Context, id uuid.UUID) error
	ListarMovimientos(ctx context.Context, cuentaID uuid.UUID, desde, hasta *time.Time) ([]dto.MovimientoBancoResponse, error)
}

type bancoService struct {
	repo  repository.BancoRepository
	saldo SaldoService
	ahora func() time.Time
}

func NewBancoService(repo repository.BancoRepository, saldo SaldoService) BancoService {
	return &bancoService{repo: repo, saldo: saldo, ahora: time.Now}
}

func NewBancoServiceAt(repo repository.BancoRepository, saldo SaldoService, ahora func() time.Time) BancoService {
	return &bancoService{repo: repo, saldo: saldo, ahora: ahora}
}

func (s *bancoService) ListarCuentas(ctx context.Context) ([]dto.CuentaResponse, error) {
	cuentas, err := s.repo.ListCuentas(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	out := make([]dto.CuentaResponse, 0, len(cuentas))
	for i := range cuentas {
		c := &cuentas[i]
		saldo, err := s.saldo.SaldoCuenta(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.CuentaResponse{
			ID:         c.ID.String(),
			Codigo:     c.Codigo,
			Nombre:     c.Nombre,
			TipoCuenta: c.TipoCuenta,
			Saldo:      saldo,
		})
	}
	return out, nil
}

func (s *bancoService) Saldo(ctx context.Context, cuentaID uuid.UUID) (*dto.SaldoCuentaResponse, error) {
	cuenta, err := s.repo.FindCuentaByID(ctx, cuentaID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if cuenta == nil {
		return nil, ErrReferenciaInvalida
	}
	saldo, err := s.saldo.SaldoCuenta(ctx, cuentaID)
	if err != nil {
		return nil, err
	}
	return &dto.SaldoCuentaResponse{
		CuentaID: cuenta.ID.String(),
		Codigo:   cuenta.Codigo,
		Nombre:   cuenta.Nombre,
		Saldo:    saldo,
		Corte:    s.ahora().Format(time.RFC3339),
	}, nil
}

func (s *bancoService) RegistrarMovimiento(ctx context.Context, operadorID uuid.UUID, req dto.RegistrarMovimientoBancoRequest) (*dto.MovimientoBancoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, ErrMontoInvalido
	}
	cuentaID, err := uuid.Parse(req.CuentaID)
	if err != nil {
		return nil, ErrReferenciaInvalida
	}
	cuenta, err := s.repo.FindCuentaByID(ctx, cuentaID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if cuenta == nil {
		return nil, ErrReferenciaInvalida
	}

	mov := &model.MovimientoBanco{
		CuentaID:    cuentaID,
		Fecha:       s.ahora(),
		Entrada:     decimal.Zero,
		Salida:      decimal.Zero,
		Descripcion: req.Descripcion,
		OperadorID:  operadorID,
	}
	switch req.Direccion {
	case "entrada":
		mov.Entrada = req.Monto
	case "salida":
		mov.Salida = req.Monto
	default:
		return nil, fmt.Errorf("direccion invalida: %q (se espera entrada o salida)", req.Direccion)
	}

	if err := s.repo.CreateMovimiento(ctx, nil, mov); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return movimientoBancoToResponse(mov), nil
}

// ActualizarMovimiento edits amount or description. Same-day only, and
// system-generated adjustments keep their direction: the non-zero column
// stays the non-zero column.
func (s *bancoService) ActualizarMovimiento(ctx context.Context, id uuid.UUID, req dto.ActualizarMovimientoBancoRequest) (*dto.MovimientoBancoResponse, error) {
	if req.Monto != nil && !req.Monto.IsPositive() {
		return nil, ErrMontoInvalido
	}
	mov, err := s.repo.FindMovimientoByID(ctx, id)
	if err != nil {
		return nil, ErrReferenciaInvalida
	}
	if !mismoDia(mov.Fecha, s.ahora()) {
		return nil, ErrNoEditable
	}

	if req.Monto != nil {
		if mov.Salida.IsZero() {
			mov.Entrada = *req.Monto
		} else {
			mov.Salida = *req.Monto
		}
	}
	if req.Descripcion != nil {
		mov.Descripcion = *req.Descripcion
	}
	if err := s.repo.UpdateMovimiento(ctx, mov); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return movimientoBancoToResponse(mov), nil
}

func (s *bancoService) EliminarMovimiento(ctx context.Context, id uuid.UUID) error {
	mov, err := s.repo.FindMovimientoByID(ctx, id)
	if err != nil {
		return ErrReferenciaInvalida
	}
	if !mismoDia(mov.Fecha, s.ahora()) {
		return ErrNoEditable
	}
	if err := s.repo.DeleteMovimiento(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return nil
}

func (s *bancoService) ListarMovimientos(ctx context.Context, cuentaID uuid.UUID, desde, hasta *time.Time) ([]dto.MovimientoBancoResponse, error) {
	movs, err := s.repo.ListMovimientos(ctx, cuentaID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	out := make([]dto.MovimientoBancoResponse, 0, len(movs))
	for i := range movs {
		out = append(out, *movimientoBancoToResponse(&movs[i]))
	}
	return out, nil
}

func movimientoBancoToResponse(m *model.MovimientoBanco) *dto.MovimientoBancoResponse {
	resp := &dto.MovimientoBancoResponse{
		ID:          m.ID.String(),
		CuentaID:    m.CuentaID.String(),
		Fecha:       m.Fecha.Format(time.RFC3339),
		Entrada:     m.Entrada,
		Salida:      m.Salida,
		Descripcion: m.Descripcion,
		OperadorID:  m.OperadorID.String(),
	}
	if m.ReferenciaID != nil {
		ref := m.ReferenciaID.String()
		resp.ReferenciaID = &ref
	}
	return resp
}
