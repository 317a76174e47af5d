package service

import (
	"context"
	"fmt"
	"time"

	"corresponsal/internal/dto"
	"corresponsal/internal/model"
	"corresponsal/internal/repository"

	"github.com/google/uuid"
)

type MovimientoService interface {
	// Registrar records a cash movement for the operator. Refuses with
	// ErrSinTurnoAbierto when no turno abierto exists today — a movement is
	// never silently recorded against a closed shift.
	Registrar(ctx context.Context, operadorID uuid.UUID, req dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMovimientoRequest) (*dto.MovimientoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context, filter repository.MovimientoFilter) ([]dto.MovimientoResponse, error)
	ListarTipos(ctx context.Context) ([]dto.TipoTransaccionResponse, error)
}

type movimientoService struct {
	repo   repository.MovimientoRepository
	tipos  repository.TipoRepository
	turnos repository.TurnoRepository
	ahora  func() time.Time
}

func NewMovimientoService(repo repository.MovimientoRepository, tipos repository.TipoRepository, turnos repository.TurnoRepository) MovimientoService {
	return &movimientoService{repo: repo, tipos: tipos, turnos: turnos, ahora: time.Now}
}

func NewMovimientoServiceAt(repo repository.MovimientoRepository, tipos repository.TipoRepository, turnos repository.TurnoRepository, ahora func() time.Time) MovimientoService {
	return &movimientoService{repo: repo, tipos: tipos, turnos: turnos, ahora: ahora}
}

func (s *movimientoService) Registrar(ctx context.Context, operadorID uuid.UUID, req dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, ErrMontoInvalido
	}
	tipo, err := s.tipos.FindByCodigo(ctx, req.TipoCodigo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if tipo == nil {
		return nil, ErrReferenciaInvalida
	}

	ahora := s.ahora()
	turno, err := s.turnos.FindAbierto(ctx, operadorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if turno == nil || !mismaFecha(turno.Fecha, ahora) {
		return nil, ErrSinTurnoAbierto
	}

	var cuentaID *uuid.UUID
	if req.CuentaID != nil {
		id, err := uuid.Parse(*req.CuentaID)
		if err != nil {
			return nil, ErrReferenciaInvalida
		}
		cuentaID = &id
	}

	mov := &model.Movimiento{
		Fecha:       ahora,
		TipoID:      tipo.ID,
		Tipo:        tipo,
		CuentaID:    cuentaID,
		Monto:       req.Monto,
		Descripcion: req.Descripcion,
		OperadorID:  operadorID,
	}
	if err := s.repo.Create(ctx, nil, mov); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return movimientoToResponse(mov), nil
}

// Actualizar changes amount and/or description. Only movements registered
// today are editable; historical reconciliations stay intact.
func (s *movimientoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMovimientoRequest) (*dto.MovimientoResponse, error) {
	if req.Monto != nil && !req.Monto.IsPositive() {
		return nil, ErrMontoInvalido
	}
	mov, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrReferenciaInvalida
	}
	if !mismoDia(mov.Fecha, s.ahora()) {
		return nil, ErrNoEditable
	}

	if req.Monto != nil {
		mov.Monto = *req.Monto
	}
	if req.Descripcion != nil {
		mov.Descripcion = *req.Descripcion
	}
	if err := s.repo.Update(ctx, mov); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return movimientoToResponse(mov), nil
}

func (s *movimientoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	mov, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrReferenciaInvalida
	}
	if !mismoDia(mov.Fecha, s.ahora()) {
		return ErrNoEditable
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return nil
}

func (s *movimientoService) Listar(ctx context.Context, filter repository.MovimientoFilter) ([]dto.MovimientoResponse, error) {
	movs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for i := range movs {
		out = append(out, *movimientoToResponse(&movs[i]))
	}
	return out, nil
}

func (s *movimientoService) ListarTipos(ctx context.Context) ([]dto.TipoTransaccionResponse, error) {
	tipos, err := s.tipos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	out := make([]dto.TipoTransaccionResponse, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, dto.TipoTransaccionResponse{
			ID:          t.ID.String(),
			Codigo:      t.Codigo,
			Nombre:      t.Nombre,
			Categoria:   t.Categoria,
			MultCaja:    t.MultCaja,
			MultBanco:   t.MultBanco,
			AfectaDeuda: t.AfectaDeuda,
		})
	}
	return out, nil
}

func movimientoToResponse(m *model.Movimiento) *dto.MovimientoResponse {
	resp := &dto.MovimientoResponse{
		ID:          m.ID.String(),
		Fecha:       m.Fecha.Format(time.RFC3339),
		Monto:       m.Monto,
		Descripcion: m.Descripcion,
		OperadorID:  m.OperadorID.String(),
	}
	if m.Tipo != nil {
		resp.TipoCodigo = m.Tipo.Codigo
		efecto := EfectoDe(m.Tipo, m.Monto)
		resp.EfectoCaja = efecto.Caja
		resp.EfectoBanco = efecto.Banco
	}
	if m.CuentaID != nil {
		id := m.CuentaID.String()
		resp.CuentaID = &id
	}
	return resp
}
