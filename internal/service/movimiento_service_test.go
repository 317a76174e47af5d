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

func abrirTurnoDePrueba(e *entorno, operador uuid.UUID, apertura time.Time) {
	e.turnos.turnos = append(e.turnos.turnos, &model.Turno{
		ID:          uuid.New(),
		OperadorID:  operador,
		Fecha:       diaDe(apertura),
		AbiertoEn:   apertura,
		BaseInicial: dinero(10000),
		Estado:      model.TurnoAbierto,
	})
}

func TestRegistrarMovimiento(t *testing.T) {
	e := nuevoEntorno()
	operador := uuid.New()
	ahora := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	abrirTurnoDePrueba(e, operador, ahora.Add(-2*time.Hour))
	svc := NewMovimientoServiceAt(e.movs, e.tipos, e.turnos, func() time.Time { return ahora })

	resp, err := svc.Registrar(context.Background(), operador, dto.RegistrarMovimientoRequest{
		TipoCodigo:  model.TipoRetiro,
		Monto:       dinero(30000),
		Descripcion: "retiro cliente 555",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TipoRetiro, resp.TipoCodigo)
	assert.True(t, dinero(-30000).Equal(resp.EfectoCaja), "retiro saca efectivo de caja")
	assert.True(t, dinero(30000).Equal(resp.EfectoBanco), "y devuelve cupo al banco")
	assert.Equal(t, ahora.Format(time.RFC3339), resp.Fecha, "fecha asignada por el servidor")
}

func TestRegistrarMontoNoPositivo(t *testing.T) {
	// A negative magnitude would invert the type's multiplier.
	e := nuevoEntorno()
	operador := uuid.New()
	ahora := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	abrirTurnoDePrueba(e, operador, ahora.Add(-time.Hour))
	svc := NewMovimientoServiceAt(e.movs, e.tipos, e.turnos, func() time.Time { return ahora })

	for _, monto := range []int64{-5000, 0} {
		_, err := svc.Registrar(context.Background(), operador, dto.RegistrarMovimientoRequest{
			TipoCodigo:  model.TipoDeposito,
			Monto:       dinero(monto),
			Descripcion: "deposito",
		})
		assert.ErrorIs(t, err, ErrMontoInvalido)
	}
	assert.Empty(t, e.movs.movs)
}

func TestActualizarMontoNoPositivo(t *testing.T) {
	e := nuevoEntorno()
	operador := uuid.New()
	ahora := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	e.registrarMov(operador, model.TipoDeposito, 5000, ahora.Add(-time.Hour))
	svc := NewMovimientoServiceAt(e.movs, e.tipos, e.turnos, func() time.Time { return ahora })

	monto := dinero(-1)
	_, err := svc.Actualizar(context.Background(), e.movs.movs[0].ID, dto.ActualizarMovimientoRequest{Monto: &monto})
	assert.ErrorIs(t, err, ErrMontoInvalido)
	assert.True(t, dinero(5000).Equal(e.movs.movs[0].Monto))
}

func TestRegistrarSinTurnoAbierto(t *testing.T) {
	e := nuevoEntorno()
	svc := NewMovimientoService(e.movs, e.tipos, e.turnos)

	_, err := svc.Registrar(context.Background(), uuid.New(), dto.RegistrarMovimientoRequest{
		TipoCodigo:  model.TipoDeposito,
		Monto:       dinero(1000),
		Descripcion: "deposito",
	})
	assert.ErrorIs(t, err, ErrSinTurnoAbierto)
	assert.Empty(t, e.movs.movs)
}

func TestRegistrarConTurnoDeOtroDia(t *testing.T) {
	e := nuevoEntorno()
	operador := uuid.New()
	ayer := time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local)
	abrirTurnoDePrueba(e, operador, ayer)
	hoy := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	svc := NewMovimientoServiceAt(e.movs, e.tipos, e.turnos, func() time.Time { return hoy })

	_, err := svc.Registrar(context.Background(), operador, dto.RegistrarMovimientoRequest{
		TipoCodigo:  model.TipoDeposito,
		Monto:       dinero(1000),
		Descripcion: "deposito",
	})
	assert.ErrorIs(t, err, ErrSinTurnoAbierto, "un turno olvidado de ayer no habilita registrar hoy")
}

func TestRegistrarTipoDesconocido(t *testing.T) {
	e := nuevoEntorno()
	operador := uuid.New()
	ahora := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	abrirTurnoDePrueba(e, operador, ahora.Add(-time.Hour))
	svc := NewMovimientoServiceAt(e.movs, e.tipos, e.turnos, func() time.Time { return ahora })

	_, err := svc.Registrar(context.Background(), operador, dto.RegistrarMovimientoRequest{
		TipoCodigo:  "transferencia_interestelar",
		Monto:       dinero(1000),
		Descripcion: "???",
	})
	assert.ErrorIs(t, err, ErrReferenciaInvalida)
}

func TestActualizarMovimientoMismoDia(t *testing.T) {
	e := nuevoEntorno()
	operador := uuid.New()
	ahora := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	e.registrarMov(operador, model.TipoDeposito, 5000, ahora.Add(-time.Hour))
	svc := NewMovimientoServiceAt(e.movs, e.tipos, e.turnos, func() time.Time { return ahora })

	monto := dinero(5500)
	resp, err := svc.Actualizar(context.Background(), e.movs.movs[0].ID, dto.ActualizarMovimientoRequest{Monto: &monto})
	require.NoError(t, err)
	assert.True(t, dinero(5500).Equal(resp.Monto))
}

func TestActualizarMovimientoDeAyer(t *testing.T) {
	e := nuevoEntorno()
	operador := uuid.New()
	ayer := time.Date(2026, 3, 9, 15, 0, 0, 0, time.Local)
	e.registrarMov(operador, model.TipoDeposito, 5000, ayer)
	hoy := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	svc := NewMovimientoServiceAt(e.movs, e.tipos, e.turnos, func() time.Time { return hoy })

	monto := dinero(9999)
	_, err := svc.Actualizar(context.Background(), e.movs.movs[0].ID, dto.ActualizarMovimientoRequest{Monto: &monto})
	assert.ErrorIs(t, err, ErrNoEditable)
	assert.True(t, dinero(5000).Equal(e.movs.movs[0].Monto), "el monto original queda intacto")
}

func TestEliminarMovimientoDeAyer(t *testing.T) {
	e := nuevoEntorno()
	operador := uuid.New()
	ayer := time.Date(2026, 3, 9, 15, 0, 0, 0, time.Local)
	e.registrarMov(operador, model.TipoDeposito, 5000, ayer)
	hoy := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	svc := NewMovimientoServiceAt(e.movs, e.tipos, e.turnos, func() time.Time { return hoy })

	err := svc.Eliminar(context.Background(), e.movs.movs[0].ID)
	assert.ErrorIs(t, err, ErrNoEditable)
	assert.Len(t, e.movs.movs, 1)
}

func TestEliminarMovimientoMismoDia(t *testing.T) {
	e := nuevoEntorno()
	operador := uuid.New()
	ahora := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	e.registrarMov(operador, model.TipoDeposito, 5000, ahora.Add(-time.Minute))
	svc := NewMovimientoServiceAt(e.movs, e.tipos, e.turnos, func() time.Time { return ahora })

	err := svc.Eliminar(context.Background(), e.movs.movs[0].ID)
	require.NoError(t, err)
	assert.Empty(t, e.movs.movs)
}

func TestEliminarMovimientoInexistente(t *testing.T) {
	e := nuevoEntorno()
	svc := NewMovimientoService(e.movs, e.tipos, e.turnos)

	err := svc.Eliminar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReferenciaInvalida)
}
