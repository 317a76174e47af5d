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

// ToleranciaCuadre is the absolute difference below which a closing counts
// as cuadrado. Differences of exactly the tolerance already classify as
// sobrante or faltante.
const ToleranciaCuadre = 100

// Subtotales are the physically counted sub-amounts of a closing.
type Subtotales struct {
	Efectivo       decimal.Decimal
	Monedas        decimal.Decimal
	Consignaciones decimal.Decimal
	QR             decimal.Decimal
	Datafono       decimal.Decimal
}

func (s Subtotales) Total() decimal.Decimal {
	return s.Efectivo.Add(s.Monedas).Add(s.Consignaciones).Add(s.QR).Add(s.Datafono)
}

// Cuadre is the outcome of comparing system balances against the count.
type Cuadre struct {
	TotalEsperado decimal.Decimal
	TotalFisico   decimal.Decimal
	Diferencia    decimal.Decimal
	Clasificacion string
}

// Conciliar applies the closing formula:
//
//	esperado = (saldoCaja + porPagar) - (porCobrar + baseManual)
//	fisico   = Σ subtotales
//	diferencia = fisico - esperado
//
// Money owed to the business (porCobrar) is cash that should NOT be in the
// drawer yet, so it subtracts; money the business owes (porPagar) is cash
// still sitting in the drawer, so it adds.
func Conciliar(saldoCaja, porPagar, porCobrar, baseManual decimal.Decimal, fisico Subtotales) Cuadre {
	esperado := saldoCaja.Add(porPagar).Sub(porCobrar).Sub(baseManual)
	total := fisico.Total()
	diferencia := total.Sub(esperado)

	clasificacion := model.CierreFaltante
	switch {
	case diferencia.Abs().LessThan(decimal.NewFromInt(ToleranciaCuadre)):
		clasificacion = model.CierreCuadrado
	case diferencia.GreaterThan(decimal.Zero):
		clasificacion = model.CierreSobrante
	}

	return Cuadre{
		TotalEsperado: esperado,
		TotalFisico:   total,
		Diferencia:    diferencia,
		Clasificacion: clasificacion,
	}
}

type ConciliacionService interface {
	// Previsualizar computes the closing with live balances, without
	// persisting anything.
	Previsualizar(ctx context.Context, operadorID uuid.UUID, req dto.ConciliacionRequest) (*dto.ConciliacionResponse, error)
	// Guardar persists the snapshot. Saved results are immutable.
	Guardar(ctx context.Context, operadorID uuid.UUID, req dto.GuardarConciliacionRequest) (*dto.ResultadoCierreResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ResultadoCierreResponse, error)
	Listar(ctx context.Context, desde, hasta time.Time) ([]dto.ResultadoCierreResponse, error)
	ObtenerModelo(ctx context.Context, id uuid.UUID) (*model.ResultadoCierre, error)
}

type conciliacionService struct {
	resultados repository.ResultadoRepository
	turnos     repository.TurnoRepository
	saldo      SaldoService
	ahora      func() time.Time
}

func NewConciliacionService(resultados repository.ResultadoRepository, turnos repository.TurnoRepository, saldo SaldoService) ConciliacionService {
	return &conciliacionService{resultados: resultados, turnos: turnos, saldo: saldo, ahora: time.Now}
}

func NewConciliacionServiceAt(resultados repository.ResultadoRepository, turnos repository.TurnoRepository, saldo SaldoService, ahora func() time.Time) ConciliacionService {
	return &conciliacionService{resultados: resultados, turnos: turnos, saldo: saldo, ahora: ahora}
}

// saldosDelDia gathers the three system balances the formula needs. The cash
// balance is the operator's open shift balance, computed from its own opening
// timestamp.
func (s *conciliacionService) saldosDelDia(ctx context.Context, operadorID uuid.UUID) (caja, porPagar, porCobrar decimal.Decimal, err error) {
	turno, err := s.turnos.FindAbierto(ctx, operadorID)
	if err != nil {
		return caja, porPagar, porCobrar, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if turno == nil || !mismaFecha(turno.Fecha, s.ahora()) {
		return caja, porPagar, porCobrar, ErrSinTurnoAbierto
	}
	caja, err = s.saldo.SaldoCaja(ctx, operadorID, turno.BaseInicial, turno.AbiertoEn)
	if err != nil {
		return caja, porPagar, porCobrar, err
	}
	porPagar, err = s.saldo.SaldoCuentaPorCodigo(ctx, model.CuentaPorPagar)
	if err != nil {
		return caja, porPagar, porCobrar, err
	}
	porCobrar, err = s.saldo.SaldoCuentaPorCodigo(ctx, model.CuentaPorCobrar)
	if err != nil {
		return caja, porPagar, porCobrar, err
	}
	return caja, porPagar, porCobrar, nil
}

func (s *conciliacionService) Previsualizar(ctx context.Context, operadorID uuid.UUID, req dto.ConciliacionRequest) (*dto.ConciliacionResponse, error) {
	caja, porPagar, porCobrar, err := s.saldosDelDia(ctx, operadorID)
	if err != nil {
		return nil, err
	}
	fisico := subtotalesDe(req)
	cuadre := Conciliar(caja, porPagar, porCobrar, req.BaseManual, fisico)
	return &dto.ConciliacionResponse{
		SaldoCaja:      caja,
		SaldoPorPagar:  porPagar,
		SaldoPorCobrar: porCobrar,
		BaseManual:     req.BaseManual,
		TotalEsperado:  cuadre.TotalEsperado,
		TotalFisico:    cuadre.TotalFisico,
		Diferencia:     cuadre.Diferencia,
		Clasificacion:  cuadre.Clasificacion,
	}, nil
}

func (s *conciliacionService) Guardar(ctx context.Context, operadorID uuid.UUID, req dto.GuardarConciliacionRequest) (*dto.ResultadoCierreResponse, error) {
	caja, porPagar, porCobrar, err := s.saldosDelDia(ctx, operadorID)
	if err != nil {
		return nil, err
	}
	fisico := subtotalesDe(req.ConciliacionRequest)
	cuadre := Conciliar(caja, porPagar, porCobrar, req.BaseManual, fisico)

	ahora := s.ahora()
	res := &model.ResultadoCierre{
		Fecha:          diaDe(ahora),
		GuardadoEn:     ahora,
		OperadorID:     operadorID,
		SaldoCaja:      caja,
		SaldoPorPagar:  porPagar,
		SaldoPorCobrar: porCobrar,
		BaseManual:     req.BaseManual,
		Efectivo:       fisico.Efectivo,
		Monedas:        fisico.Monedas,
		Consignaciones: fisico.Consignaciones,
		QR:             fisico.QR,
		Datafono:       fisico.Datafono,
		TotalEsperado:  cuadre.TotalEsperado,
		TotalFisico:    cuadre.TotalFisico,
		Diferencia:     cuadre.Diferencia,
		Clasificacion:  cuadre.Clasificacion,
		Notas:          req.Notas,
	}
	if err := s.resultados.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return resultadoToResponse(res), nil
}

func (s *conciliacionService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ResultadoCierreResponse, error) {
	res, err := s.resultados.FindByID(ctx, id)
	if err != nil {
		return nil, ErrReferenciaInvalida
	}
	return resultadoToResponse(res), nil
}

// ObtenerModelo exposes the raw snapshot, for the PDF export.
func (s *conciliacionService) ObtenerModelo(ctx context.Context, id uuid.UUID) (*model.ResultadoCierre, error) {
	res, err := s.resultados.FindByID(ctx, id)
	if err != nil {
		return nil, ErrReferenciaInvalida
	}
	return res, nil
}

func (s *conciliacionService) Listar(ctx context.Context, desde, hasta time.Time) ([]dto.ResultadoCierreResponse, error) {
	res, err := s.resultados.ListByFecha(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	out := make([]dto.ResultadoCierreResponse, 0, len(res))
	for i := range res {
		out = append(out, *resultadoToResponse(&res[i]))
	}
	return out, nil
}

func subtotalesDe(req dto.ConciliacionRequest) Subtotales {
	return Subtotales{
		Efectivo:       req.Efectivo,
		Monedas:        req.Monedas,
		Consignaciones: req.Consignaciones,
		QR:             req.QR,
		Datafono:       req.Datafono,
	}
}

func resultadoToResponse(r *model.ResultadoCierre) *dto.ResultadoCierreResponse {
	return &dto.ResultadoCierreResponse{
		ID:             r.ID.String(),
		Fecha:          r.Fecha.Format("2006-01-02"),
		GuardadoEn:     r.GuardadoEn.Format(time.RFC3339),
		OperadorID:     r.OperadorID.String(),
		SaldoCaja:      r.SaldoCaja,
		SaldoPorPagar:  r.SaldoPorPagar,
		SaldoPorCobrar: r.SaldoPorCobrar,
		BaseManual:     r.BaseManual,
		Efectivo:       r.Efectivo,
		Monedas:        r.Monedas,
		Consignaciones: r.Consignaciones,
		QR:             r.QR,
		Datafono:       r.Datafono,
		TotalEsperado:  r.TotalEsperado,
		TotalFisico:    r.TotalFisico,
		Diferencia:     r.Diferencia,
		Clasificacion:  r.Clasificacion,
		Notas:          r.Notas,
	}
}
