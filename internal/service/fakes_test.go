package service

import (
	"context"
	"errors"
	"time"

	"corresponsal/internal/model"
	"corresponsal/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository fakes. DB() returns nil so runTx degrades to a plain
// function call.

var errNoEncontrado = errors.New("registro no encontrado")

// ── Turnos ────────────────────────────────────────────────────────────────────

type fakeTurnoRepo struct {
	turnos []*model.Turno
	fail   bool
}

func (f *fakeTurnoRepo) DB() *gorm.DB { return nil }

func (f *fakeTurnoRepo) Create(_ context.Context, _ *gorm.DB, t *model.Turno) error {
	if f.fail {
		return errors.New("conexion rechazada")
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.turnos = append(f.turnos, t)
	return nil
}

func (f *fakeTurnoRepo) Update(_ context.Context, _ *gorm.DB, t *model.Turno) error {
	if f.fail {
		return errors.New("conexion rechazada")
	}
	for i := range f.turnos {
		if f.turnos[i].ID == t.ID {
			f.turnos[i] = t
			return nil
		}
	}
	return errNoEncontrado
}

func (f *fakeTurnoRepo) FindAbierto(_ context.Context, operadorID uuid.UUID) (*model.Turno, error) {
	if f.fail {
		return nil, errors.New("conexion rechazada")
	}
	for i := len(f.turnos) - 1; i >= 0; i-- {
		t := f.turnos[i]
		if t.OperadorID == operadorID && t.Estado == model.TurnoAbierto {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTurnoRepo) FindUltimoDelDia(_ context.Context, operadorID uuid.UUID, dia time.Time) (*model.Turno, error) {
	if f.fail {
		return nil, errors.New("conexion rechazada")
	}
	var ultimo *model.Turno
	for _, t := range f.turnos {
		if t.OperadorID != operadorID || !mismaFecha(t.Fecha, dia) {
			continue
		}
		if ultimo == nil || t.AbiertoEn.After(ultimo.AbiertoEn) {
			ultimo = t
		}
	}
	return ultimo, nil
}

func (f *fakeTurnoRepo) List(_ context.Context, page, limit int) ([]model.Turno, int64, error) {
	out := make([]model.Turno, 0, len(f.turnos))
	for _, t := range f.turnos {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

// ── Movimientos de caja ───────────────────────────────────────────────────────

type fakeMovimientoRepo struct {
	movs []*model.Movimiento
	fail bool
}

func (f *fakeMovimientoRepo) Create(_ context.Context, _ *gorm.DB, m *model.Movimiento) error {
	if f.fail {
		return errors.New("conexion rechazada")
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.movs = append(f.movs, m)
	return nil
}

func (f *fakeMovimientoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Movimiento, error) {
	for _, m := range f.movs {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, errNoEncontrado
}

func (f *fakeMovimientoRepo) Update(_ context.Context, m *model.Movimiento) error {
	for i := range f.movs {
		if f.movs[i].ID == m.ID {
			f.movs[i] = m
			return nil
		}
	}
	return errNoEncontrado
}

func (f *fakeMovimientoRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.movs {
		if f.movs[i].ID == id {
			f.movs = append(f.movs[:i], f.movs[i+1:]...)
			return nil
		}
	}
	return errNoEncontrado
}

func (f *fakeMovimientoRepo) List(_ context.Context, filter repository.MovimientoFilter) ([]model.Movimiento, error) {
	var out []model.Movimiento
	for _, m := range f.movs {
		if filter.OperadorID != nil && m.OperadorID != *filter.OperadorID {
			continue
		}
		if filter.Desde != nil && m.Fecha.Before(*filter.Desde) {
			continue
		}
		if filter.Hasta != nil && !m.Fecha.Before(*filter.Hasta) {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMovimientoRepo) SumEfectoCaja(_ context.Context, operadorID uuid.UUID, desde time.Time) (decimal.Decimal, error) {
	if f.fail {
		return decimal.Zero, errors.New("conexion rechazada")
	}
	total := decimal.Zero
	for _, m := range f.movs {
		if m.OperadorID != operadorID || m.Fecha.Before(desde) || m.Tipo == nil {
			continue
		}
		total = total.Add(EfectoDe(m.Tipo, m.Monto).Caja)
	}
	return total, nil
}

// ── Bancos ────────────────────────────────────────────────────────────────────

type fakeBancoRepo struct {
	cuentas []*model.Cuenta
	movs    []*model.MovimientoBanco
	fail    bool
}

func (f *fakeBancoRepo) DB() *gorm.DB { return nil }

func (f *fakeBancoRepo) agregarCuenta(codigo, tipo string, saldoInicial decimal.Decimal, ref time.Time) *model.Cuenta {
	c := &model.Cuenta{
		ID:              uuid.New(),
		Codigo:          codigo,
		Nombre:          codigo,
		TipoCuenta:      tipo,
		SaldoInicial:    saldoInicial,
		FechaReferencia: ref,
		Activa:          true,
	}
	f.cuentas = append(f.cuentas, c)
	return c
}

func (f *fakeBancoRepo) FindCuentaByID(_ context.Context, id uuid.UUID) (*model.Cuenta, error) {
	if f.fail {
		return nil, errors.New("conexion rechazada")
	}
	for _, c := range f.cuentas {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeBancoRepo) FindCuentaByCodigo(_ context.Context, codigo string) (*model.Cuenta, error) {
	if f.fail {
		return nil, errors.New("conexion rechazada")
	}
	for _, c := range f.cuentas {
		if c.Codigo == codigo {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeBancoRepo) ListCuentas(_ context.Context) ([]model.Cuenta, error) {
	out := make([]model.Cuenta, 0, len(f.cuentas))
	for _, c := range f.cuentas {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeBancoRepo) CreateMovimiento(_ context.Context, _ *gorm.DB, m *model.MovimientoBanco) error {
	if f.fail {
		return errors.New("conexion rechazada")
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.movs = append(f.movs, m)
	return nil
}

func (f *fakeBancoRepo) FindMovimientoByID(_ context.Context, id uuid.UUID) (*model.MovimientoBanco, error) {
	for _, m := range f.movs {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, errNoEncontrado
}

func (f *fakeBancoRepo) UpdateMovimiento(_ context.Context, m *model.MovimientoBanco) error {
	for i := range f.movs {
		if f.movs[i].ID == m.ID {
			f.movs[i] = m
			return nil
		}
	}
	return errNoEncontrado
}

func (f *fakeBancoRepo) DeleteMovimiento(_ context.Context, id uuid.UUID) error {
	for i := range f.movs {
		if f.movs[i].ID == id {
			f.movs = append(f.movs[:i], f.movs[i+1:]...)
			return nil
		}
	}
	return errNoEncontrado
}

func (f *fakeBancoRepo) ListMovimientos(_ context.Context, cuentaID uuid.UUID, desde, hasta *time.Time) ([]model.MovimientoBanco, error) {
	var out []model.MovimientoBanco
	for _, m := range f.movs {
		if m.CuentaID != cuentaID {
			continue
		}
		if desde != nil && m.Fecha.Before(*desde) {
			continue
		}
		if hasta != nil && !m.Fecha.Before(*hasta) {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeBancoRepo) SumNeto(_ context.Context, cuentaID uuid.UUID, desde time.Time) (decimal.Decimal, error) {
	if f.fail {
		return decimal.Zero, errors.New("conexion rechazada")
	}
	total := decimal.Zero
	for _, m := range f.movs {
		if m.CuentaID != cuentaID || m.Fecha.Before(desde) {
			continue
		}
		total = total.Add(m.Entrada).Sub(m.Salida)
	}
	return total, nil
}

// ── Tipos ─────────────────────────────────────────────────────────────────────

type fakeTipoRepo struct {
	tipos map[string]*model.TipoTransaccion
}

func newFakeTipoRepo() *fakeTipoRepo {
	f := &fakeTipoRepo{tipos: make(map[string]*model.TipoTransaccion)}
	seeds := []struct {
		codigo              string
		multCaja, multBanco int
		afectaDeuda         bool
	}{
		{model.TipoDeposito, +1, -1, false},
		{model.TipoRetiro, -1, +1, false},
		{model.TipoPagoRecibo, +1, -1, false},
		{model.TipoIngresoManual, +1, 0, false},
		{model.TipoEgresoManual, -1, 0, false},
		{model.TipoPrestamo, -1, 0, true},
		{model.TipoAbonoCredito, +1, 0, true},
	}
	for _, s := range seeds {
		f.tipos[s.codigo] = &model.TipoTransaccion{
			ID:          uuid.New(),
			Codigo:      s.codigo,
			Nombre:      s.codigo,
			MultCaja:    s.multCaja,
			MultBanco:   s.multBanco,
			AfectaDeuda: s.afectaDeuda,
		}
	}
	return f
}

func (f *fakeTipoRepo) FindByCodigo(_ context.Context, codigo string) (*model.TipoTransaccion, error) {
	return f.tipos[codigo], nil
}

func (f *fakeTipoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.TipoTransaccion, error) {
	for _, t := range f.tipos {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errNoEncontrado
}

func (f *fakeTipoRepo) List(_ context.Context) ([]model.TipoTransaccion, error) {
	out := make([]model.TipoTransaccion, 0, len(f.tipos))
	for _, t := range f.tipos {
		out = append(out, *t)
	}
	return out, nil
}

// ── Resultados de cierre ──────────────────────────────────────────────────────

type fakeResultadoRepo struct {
	resultados []*model.ResultadoCierre
}

func (f *fakeResultadoRepo) Create(_ context.Context, r *model.ResultadoCierre) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.resultados = append(f.resultados, r)
	return nil
}

func (f *fakeResultadoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ResultadoCierre, error) {
	for _, r := range f.resultados {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errNoEncontrado
}

func (f *fakeResultadoRepo) ListByFecha(_ context.Context, desde, hasta time.Time) ([]model.ResultadoCierre, error) {
	var out []model.ResultadoCierre
	for _, r := range f.resultados {
		if r.Fecha.Before(desde) || r.Fecha.After(hasta) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

// ── Facturas ──────────────────────────────────────────────────────────────────

type fakeFacturaRepo struct {
	facturas []*model.FacturaCompra
}

func (f *fakeFacturaRepo) DB() *gorm.DB { return nil }

func (f *fakeFacturaRepo) Create(_ context.Context, fc *model.FacturaCompra) error {
	if fc.ID == uuid.Nil {
		fc.ID = uuid.New()
	}
	f.facturas = append(f.facturas, fc)
	return nil
}

func (f *fakeFacturaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.FacturaCompra, error) {
	for _, fc := range f.facturas {
		if fc.ID == id {
			return fc, nil
		}
	}
	return nil, errNoEncontrado
}

func (f *fakeFacturaRepo) Update(_ context.Context, _ *gorm.DB, fc *model.FacturaCompra) error {
	for i := range f.facturas {
		if f.facturas[i].ID == fc.ID {
			f.facturas[i] = fc
			return nil
		}
	}
	return errNoEncontrado
}

func (f *fakeFacturaRepo) List(_ context.Context, estado string, page, limit int) ([]model.FacturaCompra, int64, error) {
	var out []model.FacturaCompra
	for _, fc := range f.facturas {
		if estado != "" && fc.Estado != estado {
			continue
		}
		out = append(out, *fc)
	}
	return out, int64(len(out)), nil
}

func (f *fakeFacturaRepo) ListPorVencer(_ context.Context, hasta time.Time, limit int) ([]model.FacturaCompra, error) {
	var out []model.FacturaCompra
	for _, fc := range f.facturas {
		if fc.Estado != model.FacturaPendiente || fc.AlertaEnviada {
			continue
		}
		if fc.FechaVencimiento.After(hasta) {
			continue
		}
		out = append(out, *fc)
	}
	return out, nil
}

func (f *fakeFacturaRepo) MarcarVencidas(_ context.Context, ahora time.Time) (int64, error) {
	var n int64
	for _, fc := range f.facturas {
		if fc.Estado == model.FacturaPendiente && fc.FechaVencimiento.Before(diaDe(ahora)) {
			fc.Estado = model.FacturaVencida
			n++
		}
	}
	return n, nil
}

// ── PyG ───────────────────────────────────────────────────────────────────────

type fakePygRepo struct {
	registros []*model.RegistroPyG
	fail      bool
}

func (f *fakePygRepo) Create(_ context.Context, reg *model.RegistroPyG) error {
	if f.fail {
		return errors.New("conexion rechazada")
	}
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	f.registros = append(f.registros, reg)
	return nil
}

func (f *fakePygRepo) List(_ context.Context, desde, hasta time.Time) ([]model.RegistroPyG, error) {
	var out []model.RegistroPyG
	for _, r := range f.registros {
		if r.Fecha.Before(desde) || r.Fecha.After(hasta) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakePygRepo) SumPorTipo(_ context.Context, tipo string, desde, hasta time.Time) (decimal.Decimal, error) {
	if f.fail {
		return decimal.Zero, errors.New("conexion rechazada")
	}
	total := decimal.Zero
	for _, r := range f.registros {
		if r.TipoRegistro != tipo || r.Fecha.Before(desde) || r.Fecha.After(hasta) {
			continue
		}
		total = total.Add(r.Monto)
	}
	return total, nil
}
