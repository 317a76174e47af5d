package service

import (
	"context"
	"testing"
	"time"

	"corresponsal/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuevoAjusteEntrada(t *testing.T) {
	ahora := time.Date(2026, 3, 10, 17, 30, 0, 0, time.Local)
	mov, err := NuevoAjuste(uuid.New(), dinero(1000), dinero(1200), uuid.New(), ahora)
	require.NoError(t, err)
	assert.True(t, dinero(200).Equal(mov.Entrada))
	assert.True(t, mov.Salida.IsZero())
	assert.Contains(t, mov.Descripcion, "2026-03-10 17:30")
}

func TestNuevoAjusteSalida(t *testing.T) {
	mov, err := NuevoAjuste(uuid.New(), dinero(1200), dinero(1000), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.True(t, mov.Entrada.IsZero())
	assert.True(t, dinero(200).Equal(mov.Salida), "la salida se registra en valor absoluto")
}

func TestNuevoAjusteYaCuadrado(t *testing.T) {
	mov, err := NuevoAjuste(uuid.New(), dinero(1000), dinero(1000), uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrYaCuadrado)
	assert.Nil(t, mov)
}

func TestNuevoAjusteCentavos(t *testing.T) {
	mov, err := NuevoAjuste(uuid.New(), decimal.NewFromFloat(1000.50), decimal.NewFromFloat(1000.75), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(0.25).Equal(mov.Entrada))
}

func TestGenerarAjuste(t *testing.T) {
	e := nuevoEntorno()
	ahora := time.Date(2026, 3, 10, 17, 0, 0, 0, time.Local)
	cuenta := e.bancos.agregarCuenta("bancolombia", "banco", dinero(1000), ahora.AddDate(0, -1, 0))
	svc := NewAjusteServiceAt(e.bancos, e.saldo, func() time.Time { return ahora })

	saldoReal := dinero(1200)
	resp, err := svc.GenerarAjuste(context.Background(), uuid.New(), dto.AjusteRequest{
		CuentaID:  cuenta.ID.String(),
		SaldoReal: &saldoReal,
	})
	require.NoError(t, err)
	assert.True(t, dinero(1000).Equal(resp.SaldoAnterior))
	assert.True(t, dinero(1200).Equal(resp.SaldoNuevo))
	assert.True(t, dinero(200).Equal(resp.Diferencia))

	// The next derived read matches the verified balance.
	saldo, err := e.saldo.SaldoCuenta(context.Background(), cuenta.ID)
	require.NoError(t, err)
	assert.True(t, dinero(1200).Equal(saldo))
}

func TestGenerarAjusteYaCuadradoNoEscribe(t *testing.T) {
	e := nuevoEntorno()
	cuenta := e.bancos.agregarCuenta("davivienda", "banco", dinero(5000), time.Now().AddDate(0, -1, 0))
	svc := NewAjusteService(e.bancos, e.saldo)

	saldoReal := dinero(5000)
	_, err := svc.GenerarAjuste(context.Background(), uuid.New(), dto.AjusteRequest{
		CuentaID:  cuenta.ID.String(),
		SaldoReal: &saldoReal,
	})
	assert.ErrorIs(t, err, ErrYaCuadrado)
	assert.Empty(t, e.bancos.movs, "un saldo ya cuadrado no genera movimiento")
}

func TestGenerarAjusteCuentaInexistente(t *testing.T) {
	e := nuevoEntorno()
	svc := NewAjusteService(e.bancos, e.saldo)

	saldoReal := dinero(1000)
	_, err := svc.GenerarAjuste(context.Background(), uuid.New(), dto.AjusteRequest{
		CuentaID:  uuid.NewString(),
		SaldoReal: &saldoReal,
	})
	assert.ErrorIs(t, err, ErrReferenciaInvalida)
}

func TestGenerarAjusteASaldoCero(t *testing.T) {
	// Zero is a legitimate verified balance: the adjustment drains the account.
	e := nuevoEntorno()
	cuenta := e.bancos.agregarCuenta("davivienda", "banco", dinero(5000), time.Now().AddDate(0, -1, 0))
	svc := NewAjusteService(e.bancos, e.saldo)

	cero := decimal.Zero
	resp, err := svc.GenerarAjuste(context.Background(), uuid.New(), dto.AjusteRequest{
		CuentaID:  cuenta.ID.String(),
		SaldoReal: &cero,
	})
	require.NoError(t, err)
	assert.True(t, dinero(5000).Equal(resp.Movimiento.Salida))
	assert.True(t, resp.SaldoNuevo.IsZero())

	saldo, err := e.saldo.SaldoCuenta(context.Background(), cuenta.ID)
	require.NoError(t, err)
	assert.True(t, saldo.IsZero())
}

func TestGenerarAjusteSinSaldoReal(t *testing.T) {
	e := nuevoEntorno()
	cuenta := e.bancos.agregarCuenta("bancolombia", "banco", dinero(5000), time.Now().AddDate(0, -1, 0))
	svc := NewAjusteService(e.bancos, e.saldo)

	_, err := svc.GenerarAjuste(context.Background(), uuid.New(), dto.AjusteRequest{CuentaID: cuenta.ID.String()})
	require.Error(t, err)
	assert.Empty(t, e.bancos.movs)
}
