package service

import (
	"context"
	"testing"
	"time"

	"corresponsal/internal/dto"
	"corresponsal/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarFactura(t *testing.T) {
	e := nuevoEntorno()
	facturas := &fakeFacturaRepo{}
	svc := NewFacturaService(facturas, e.bancos)

	resp, err := svc.Registrar(context.Background(), uuid.New(), dto.RegistrarFacturaRequest{
		Proveedor:        "Distribuidora El Roble",
		NumeroFactura:    "FV-1043",
		Monto:            dinero(350000),
		FechaEmision:     "2026-03-01",
		FechaVencimiento: "2026-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, model.FacturaPendiente, resp.Estado)
	assert.False(t, resp.AlertaEnviada)
	assert.Nil(t, resp.PagadaEn)
	require.Len(t, facturas.facturas, 1)
}

func TestRegistrarFacturaVencimientoInvalido(t *testing.T) {
	e := nuevoEntorno()
	facturas := &fakeFacturaRepo{}
	svc := NewFacturaService(facturas, e.bancos)

	_, err := svc.Registrar(context.Background(), uuid.New(), dto.RegistrarFacturaRequest{
		Proveedor:        "Distribuidora El Roble",
		NumeroFactura:    "FV-1044",
		Monto:            dinero(1000),
		FechaEmision:     "2026-03-15",
		FechaVencimiento: "2026-03-01",
	})
	require.Error(t, err)
	assert.Empty(t, facturas.facturas)
}

func agregarFactura(f *fakeFacturaRepo, numero string, vencimiento time.Time, estado string) *model.FacturaCompra {
	fc := &model.FacturaCompra{
		ID:               uuid.New(),
		Proveedor:        "Proveedor " + numero,
		NumeroFactura:    numero,
		Monto:            dinero(100000),
		FechaEmision:     vencimiento.AddDate(0, -1, 0),
		FechaVencimiento: vencimiento,
		Estado:           estado,
		OperadorID:       uuid.New(),
	}
	f.facturas = append(f.facturas, fc)
	return fc
}

func TestFacturasPorVencer(t *testing.T) {
	e := nuevoEntorno()
	facturas := &fakeFacturaRepo{}
	ahora := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	svc := NewFacturaServiceAt(facturas, e.bancos, func() time.Time { return ahora })

	agregarFactura(facturas, "F-1", ahora.AddDate(0, 0, 2), model.FacturaPendiente)  // dentro de la ventana
	agregarFactura(facturas, "F-2", ahora.AddDate(0, 0, 10), model.FacturaPendiente) // fuera
	agregarFactura(facturas, "F-3", ahora.AddDate(0, 0, 1), model.FacturaPagada)     // ya pagada

	out, err := svc.PorVencer(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "F-1", out[0].NumeroFactura)
}

func TestMarcarFacturaPagada(t *testing.T) {
	e := nuevoEntorno()
	facturas := &fakeFacturaRepo{}
	ahora := time.Date(2026, 3, 10, 11, 0, 0, 0, time.Local)
	cuenta := e.bancos.agregarCuenta("bancolombia", "banco", dinero(500000), ahora.AddDate(0, -1, 0))
	svc := NewFacturaServiceAt(facturas, e.bancos, func() time.Time { return ahora })

	fc := agregarFactura(facturas, "FV-2001", ahora.AddDate(0, 0, 5), model.FacturaPendiente)
	operador := uuid.New()

	resp, err := svc.MarcarPagada(context.Background(), fc.ID, operador, dto.PagarFacturaRequest{CuentaID: cuenta.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, model.FacturaPagada, resp.Estado)
	require.NotNil(t, resp.PagadaEn)
	require.NotNil(t, resp.CuentaPagoID)
	assert.Equal(t, cuenta.ID.String(), *resp.CuentaPagoID)

	require.Len(t, e.bancos.movs, 1)
	pago := e.bancos.movs[0]
	assert.True(t, fc.Monto.Equal(pago.Salida), "el pago sale de la cuenta por el monto de la factura")
	assert.True(t, pago.Entrada.IsZero())
	require.NotNil(t, pago.ReferenciaID)
	assert.Equal(t, fc.ID, *pago.ReferenciaID)

	saldo, err := e.saldo.SaldoCuenta(context.Background(), cuenta.ID)
	require.NoError(t, err)
	assert.True(t, dinero(400000).Equal(saldo))
}

func TestMarcarFacturaPagadaDosVeces(t *testing.T) {
	e := nuevoEntorno()
	facturas := &fakeFacturaRepo{}
	ahora := time.Date(2026, 3, 10, 11, 0, 0, 0, time.Local)
	cuenta := e.bancos.agregarCuenta("bancolombia", "banco", dinero(500000), ahora.AddDate(0, -1, 0))
	svc := NewFacturaServiceAt(facturas, e.bancos, func() time.Time { return ahora })

	fc := agregarFactura(facturas, "FV-2002", ahora.AddDate(0, 0, 5), model.FacturaPendiente)
	operador := uuid.New()

	_, err := svc.MarcarPagada(context.Background(), fc.ID, operador, dto.PagarFacturaRequest{CuentaID: cuenta.ID.String()})
	require.NoError(t, err)

	_, err = svc.MarcarPagada(context.Background(), fc.ID, operador, dto.PagarFacturaRequest{CuentaID: cuenta.ID.String()})
	require.Error(t, err)
	assert.Len(t, e.bancos.movs, 1, "el segundo intento no genera otro pago")
}

func TestMarcarPagadaFacturaVencida(t *testing.T) {
	// Overdue invoices can still be paid; only already-paid ones are blocked.
	e := nuevoEntorno()
	facturas := &fakeFacturaRepo{}
	ahora := time.Date(2026, 3, 10, 11, 0, 0, 0, time.Local)
	cuenta := e.bancos.agregarCuenta("davivienda", "banco", dinero(500000), ahora.AddDate(0, -1, 0))
	svc := NewFacturaServiceAt(facturas, e.bancos, func() time.Time { return ahora })

	fc := agregarFactura(facturas, "FV-2003", ahora.AddDate(0, 0, -10), model.FacturaVencida)

	resp, err := svc.MarcarPagada(context.Background(), fc.ID, uuid.New(), dto.PagarFacturaRequest{CuentaID: cuenta.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, model.FacturaPagada, resp.Estado)
}

func TestMarcarVencidas(t *testing.T) {
	facturas := &fakeFacturaRepo{}
	ahora := time.Date(2026, 3, 10, 0, 30, 0, 0, time.Local)

	agregarFactura(facturas, "V-1", ahora.AddDate(0, 0, -1), model.FacturaPendiente)
	agregarFactura(facturas, "V-2", ahora, model.FacturaPendiente) // vence hoy, todavia no esta vencida
	agregarFactura(facturas, "V-3", ahora.AddDate(0, 0, -5), model.FacturaPagada)

	n, err := facturas.MarcarVencidas(context.Background(), ahora)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, model.FacturaVencida, facturas.facturas[0].Estado)
	assert.Equal(t, model.FacturaPendiente, facturas.facturas[1].Estado)
	assert.Equal(t, model.FacturaPagada, facturas.facturas[2].Estado)
}
