package service

import (
	"context"
	"testing"
	"time"

	"corresponsal/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarMovimientoBanco(t *testing.T) {
	e := nuevoEntorno()
	ahora := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	cuenta := e.bancos.agregarCuenta("bancolombia", "banco", dinero(100000), ahora.AddDate(0, -1, 0))
	svc := NewBancoServiceAt(e.bancos, e.saldo, func() time.Time { return ahora })

	resp, err := svc.RegistrarMovimiento(context.Background(), uuid.New(), dto.RegistrarMovimientoBancoRequest{
		CuentaID:    cuenta.ID.String(),
		Direccion:   "salida",
		Monto:       dinero(25000),
		Descripcion: "transferencia a proveedor",
	})
	require.NoError(t, err)
	assert.True(t, dinero(25000).Equal(resp.Salida))
	assert.True(t, resp.Entrada.IsZero(), "solo una de las dos columnas lleva valor")

	saldo, err := e.saldo.SaldoCuenta(context.Background(), cuenta.ID)
	require.NoError(t, err)
	assert.True(t, dinero(75000).Equal(saldo))
}

func TestRegistrarMovimientoBancoMontoNoPositivo(t *testing.T) {
	// A negative magnitude would write a negative ledger column.
	e := nuevoEntorno()
	ahora := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	cuenta := e.bancos.agregarCuenta("bancolombia", "banco", dinero(100000), ahora.AddDate(0, -1, 0))
	svc := NewBancoServiceAt(e.bancos, e.saldo, func() time.Time { return ahora })

	for _, monto := range []int64{-7000, 0} {
		_, err := svc.RegistrarMovimiento(context.Background(), uuid.New(), dto.RegistrarMovimientoBancoRequest{
			CuentaID:    cuenta.ID.String(),
			Direccion:   "entrada",
			Monto:       dinero(monto),
			Descripcion: "consignacion",
		})
		assert.ErrorIs(t, err, ErrMontoInvalido)
	}
	assert.Empty(t, e.bancos.movs)
}

func TestActualizarMovimientoBancoMontoNoPositivo(t *testing.T) {
	e := nuevoEntorno()
	ahora := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	cuenta := e.bancos.agregarCuenta("bancolombia", "banco", dinero(100000), ahora.AddDate(0, -1, 0))
	svc := NewBancoServiceAt(e.bancos, e.saldo, func() time.Time { return ahora })

	resp, err := svc.RegistrarMovimiento(context.Background(), uuid.New(), dto.RegistrarMovimientoBancoRequest{
		CuentaID:    cuenta.ID.String(),
		Direccion:   "salida",
		Monto:       dinero(25000),
		Descripcion: "transferencia a proveedor",
	})
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	monto := dinero(-100)
	_, err = svc.ActualizarMovimiento(context.Background(), id, dto.ActualizarMovimientoBancoRequest{Monto: &monto})
	assert.ErrorIs(t, err, ErrMontoInvalido)
	assert.True(t, dinero(25000).Equal(e.bancos.movs[0].Salida))
}

func TestRegistrarMovimientoBancoCuentaInexistente(t *testing.T) {
	e := nuevoEntorno()
	svc := NewBancoService(e.bancos, e.saldo)

	_, err := svc.RegistrarMovimiento(context.Background(), uuid.New(), dto.RegistrarMovimientoBancoRequest{
		CuentaID:    uuid.NewString(),
		Direccion:   "entrada",
		Monto:       dinero(1000),
		Descripcion: "consignacion",
	})
	assert.ErrorIs(t, err, ErrReferenciaInvalida)
}

func TestActualizarMovimientoBancoConservaDireccion(t *testing.T) {
	e := nuevoEntorno()
	ahora := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	cuenta := e.bancos.agregarCuenta("bancolombia", "banco", dinero(100000), ahora.AddDate(0, -1, 0))
	svc := NewBancoServiceAt(e.bancos, e.saldo, func() time.Time { return ahora })

	resp, err := svc.RegistrarMovimiento(context.Background(), uuid.New(), dto.RegistrarMovimientoBancoRequest{
		CuentaID:    cuenta.ID.String(),
		Direccion:   "salida",
		Monto:       dinero(25000),
		Descripcion: "transferencia a proveedor",
	})
	require.NoError(t, err)

	monto := dinero(30000)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	editado, err := svc.ActualizarMovimiento(context.Background(), id, dto.ActualizarMovimientoBancoRequest{Monto: &monto})
	require.NoError(t, err)
	assert.True(t, dinero(30000).Equal(editado.Salida), "el nuevo monto queda en la misma columna")
	assert.True(t, editado.Entrada.IsZero())
}

func TestActualizarMovimientoBancoDeAyer(t *testing.T) {
	e := nuevoEntorno()
	ayer := time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local)
	cuenta := e.bancos.agregarCuenta("bancolombia", "banco", dinero(100000), ayer.AddDate(0, -1, 0))
	reloj := ayer
	svc := NewBancoServiceAt(e.bancos, e.saldo, func() time.Time { return reloj })

	resp, err := svc.RegistrarMovimiento(context.Background(), uuid.New(), dto.RegistrarMovimientoBancoRequest{
		CuentaID:    cuenta.ID.String(),
		Direccion:   "entrada",
		Monto:       dinero(5000),
		Descripcion: "consignacion",
	})
	require.NoError(t, err)

	reloj = ayer.AddDate(0, 0, 1)
	monto := dinero(9999)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	_, err = svc.ActualizarMovimiento(context.Background(), id, dto.ActualizarMovimientoBancoRequest{Monto: &monto})
	assert.ErrorIs(t, err, ErrNoEditable)

	err = svc.EliminarMovimiento(context.Background(), id)
	assert.ErrorIs(t, err, ErrNoEditable)
}

func TestListarCuentasConSaldo(t *testing.T) {
	e := nuevoEntorno()
	ref := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	e.bancos.agregarCuenta("bancolombia", "banco", dinero(100000), ref)
	e.bancos.agregarCuenta("davivienda", "banco", dinero(50000), ref)
	svc := NewBancoService(e.bancos, e.saldo)

	cuentas, err := svc.ListarCuentas(context.Background())
	require.NoError(t, err)
	require.Len(t, cuentas, 2)
	assert.True(t, dinero(100000).Equal(cuentas[0].Saldo))
	assert.True(t, dinero(50000).Equal(cuentas[1].Saldo))
}
