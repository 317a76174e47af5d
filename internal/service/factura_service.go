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

type FacturaService interface {
	Registrar(ctx context.Context, operadorID uuid.UUID, req dto.RegistrarFacturaRequest) (*dto.FacturaResponse, error)
	Listar(ctx context.Context, estado string, page, limit int) ([]dto.FacturaResponse, int64, error)
	// PorVencer lists pending invoices due within dias days.
	PorVencer(ctx context.Context, dias int) ([]dto.FacturaResponse, error)
	// MarcarPagada settles the invoice and records the outgoing payment on
	// the chosen account ledger, in one transaction.
	MarcarPagada(ctx context.Context, id uuid.UUID, operadorID uuid.UUID, req dto.PagarFacturaRequest) (*dto.FacturaResponse, error)
}

type facturaService struct {
	facturas repository.FacturaRepository
	bancos   repository.BancoRepository
	ahora    func() time.Time
}

func NewFacturaService(facturas repository.FacturaRepository, bancos repository.BancoRepository) FacturaService {
	return &facturaService{facturas: facturas, bancos: bancos, ahora: time.Now}
}

func NewFacturaServiceAt(facturas repository.FacturaRepository, bancos repository.BancoRepository, ahora func() time.Time) FacturaService {
	return &facturaService{facturas: facturas, bancos: bancos, ahora: ahora}
}

func (s *facturaService) Registrar(ctx context.Context, operadorID uuid.UUID, req dto.RegistrarFacturaRequest) (*dto.FacturaResponse, error) {
	emision, err := time.Parse("2006-01-02", req.FechaEmision)
	if err != nil {
		return nil, fmt.Errorf("fecha_emision invalida: %v", err)
	}
	vencimiento, err := time.Parse("2006-01-02", req.FechaVencimiento)
	if err != nil {
		return nil, fmt.Errorf("fecha_vencimiento invalida: %v", err)
	}
	if vencimiento.Before(emision) {
		return nil, fmt.Errorf("la fecha de vencimiento no puede ser anterior a la emision")
	}

	f := &model.FacturaCompra{
		Proveedor:        req.Proveedor,
		NumeroFactura:    req.NumeroFactura,
		Monto:            req.Monto,
		FechaEmision:     emision,
		FechaVencimiento: vencimiento,
		Estado:           model.FacturaPendiente,
		OperadorID:       operadorID,
	}
	if err := s.facturas.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return facturaToResponse(f), nil
}

func (s *facturaService) Listar(ctx context.Context, estado string, page, limit int) ([]dto.FacturaResponse, int64, error) {
	facturas, total, err := s.facturas.List(ctx, estado, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	out := make([]dto.FacturaResponse, 0, len(facturas))
	for i := range facturas {
		out = append(out, *facturaToResponse(&facturas[i]))
	}
	return out, total, nil
}

func (s *facturaService) PorVencer(ctx context.Context, dias int) ([]dto.FacturaResponse, error) {
	hasta := s.ahora().AddDate(0, 0, dias)
	facturas, err := s.facturas.ListPorVencer(ctx, hasta, 200)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	out := make([]dto.FacturaResponse, 0, len(facturas))
	for i := range facturas {
		out = append(out, *facturaToResponse(&facturas[i]))
	}
	return out, nil
}

func (s *facturaService) MarcarPagada(ctx context.Context, id uuid.UUID, operadorID uuid.UUID, req dto.PagarFacturaRequest) (*dto.FacturaResponse, error) {
	f, err := s.facturas.FindByID(ctx, id)
	if err != nil {
		return nil, ErrReferenciaInvalida
	}
	if f.Estado == model.FacturaPagada {
		return nil, fmt.Errorf("la factura %s ya fue pagada", f.NumeroFactura)
	}

	cuentaID, err := uuid.Parse(req.CuentaID)
	if err != nil {
		return nil, ErrReferenciaInvalida
	}
	cuenta, err := s.bancos.FindCuentaByID(ctx, cuentaID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if cuenta == nil {
		return nil, ErrReferenciaInvalida
	}

	ahora := s.ahora()
	pago := &model.MovimientoBanco{
		CuentaID:     cuentaID,
		Fecha:        ahora,
		Entrada:      decimal.Zero,
		Salida:       f.Monto,
		Descripcion:  fmt.Sprintf("Pago factura %s (%s)", f.NumeroFactura, f.Proveedor),
		OperadorID:   operadorID,
		ReferenciaID: &f.ID,
	}

	txErr := runTx(ctx, s.facturas.DB(), func(tx *gorm.DB) error {
		if err := s.bancos.CreateMovimiento(ctx, tx, pago); err != nil {
			return err
		}
		f.Estado = model.FacturaPagada
		f.PagadaEn = &ahora
		f.CuentaPagoID = &cuentaID
		return s.facturas.Update(ctx, tx, f)
	})
	if txErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, txErr)
	}
	return facturaToResponse(f), nil
}

func facturaToResponse(f *model.FacturaCompra) *dto.FacturaResponse {
	resp := &dto.FacturaResponse{
		ID:               f.ID.String(),
		Proveedor:        f.Proveedor,
		NumeroFactura:    f.NumeroFactura,
		Monto:            f.Monto,
		FechaEmision:     f.FechaEmision.Format("2006-01-02"),
		FechaVencimiento: f.FechaVencimiento.Format("2006-01-02"),
		Estado:           f.Estado,
		AlertaEnviada:    f.AlertaEnviada,
	}
	if f.PagadaEn != nil {
		s := f.PagadaEn.Format(time.RFC3339)
		resp.PagadaEn = &s
	}
	if f.CuentaPagoID != nil {
		id := f.CuentaPagoID.String()
		resp.CuentaPagoID = &id
	}
	return resp
}
