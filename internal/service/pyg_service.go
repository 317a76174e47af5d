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

type PyGService interface {
	Registrar(ctx context.Context, operadorID uuid.UUID, req dto.RegistrarPyGRequest) (*dto.RegistroPyGResponse, error)
	Listar(ctx context.Context, desde, hasta time.Time) ([]dto.RegistroPyGResponse, error)
	// ResumenMensual totals the journal for one calendar month.
	ResumenMensual(ctx context.Context, anio int, mes time.Month) (*dto.ResumenPyGResponse, error)
}

type pygService struct {
	repo  repository.PyGRepository
	ahora func() time.Time
}

func NewPyGService(repo repository.PyGRepository) PyGService {
	return &pygService{repo: repo, ahora: time.Now}
}

func (s *pygService) Registrar(ctx context.Context, operadorID uuid.UUID, req dto.RegistrarPyGRequest) (*dto.RegistroPyGResponse, error) {
	fecha := s.ahora()
	if req.Fecha != "" {
		f, err := time.Parse("2006-01-02", req.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha invalida: %v", err)
		}
		fecha = f
	}

	reg := &model.RegistroPyG{
		Fecha:        fecha,
		TipoRegistro: req.TipoRegistro,
		Categoria:    req.Categoria,
		Concepto:     req.Concepto,
		Monto:        req.Monto,
		OperadorID:   operadorID,
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return registroPyGToResponse(reg), nil
}

func (s *pygService) Listar(ctx context.Context, desde, hasta time.Time) ([]dto.RegistroPyGResponse, error) {
	regs, err := s.repo.List(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	out := make([]dto.RegistroPyGResponse, 0, len(regs))
	for i := range regs {
		out = append(out, *registroPyGToResponse(&regs[i]))
	}
	return out, nil
}

func (s *pygService) ResumenMensual(ctx context.Context, anio int, mes time.Month) (*dto.ResumenPyGResponse, error) {
	desde := time.Date(anio, mes, 1, 0, 0, 0, 0, time.Local)
	hasta := desde.AddDate(0, 1, -1)

	ingresos, err := s.repo.SumPorTipo(ctx, "ingreso", desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	gastos, err := s.repo.SumPorTipo(ctx, "gasto", desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}

	return &dto.ResumenPyGResponse{
		Desde:    desde.Format("2006-01-02"),
		Hasta:    hasta.Format("2006-01-02"),
		Ingresos: ingresos,
		Gastos:   gastos,
		Utilidad: ingresos.Sub(gastos),
	}, nil
}

func registroPyGToResponse(r *model.RegistroPyG) *dto.RegistroPyGResponse {
	return &dto.RegistroPyGResponse{
		ID:           r.ID.String(),
		Fecha:        r.Fecha.Format("2006-01-02"),
		TipoRegistro: r.TipoRegistro,
		Categoria:    r.Categoria,
		Concepto:     r.Concepto,
		Monto:        r.Monto,
		OperadorID:   r.OperadorID.String(),
	}
}
