package service

import (
	"time"

	"corresponsal/internal/model"

	"github.com/shopspring/decimal"
)

// Efecto is the signed contribution of one movement to each ledger,
// plus whether it increases outstanding company debt.
type Efecto struct {
	Caja        decimal.Decimal
	Banco       decimal.Decimal
	AfectaDeuda bool
}

// EfectoDe applies the type's configured multipliers to a movement
// magnitude. Pure: the only failure mode is an unknown type, checked by
// callers before resolving the *TipoTransaccion.
func EfectoDe(tipo *model.TipoTransaccion, monto decimal.Decimal) Efecto {
	return Efecto{
		Caja:        monto.Mul(decimal.NewFromInt(int64(tipo.MultCaja))),
		Banco:       monto.Mul(decimal.NewFromInt(int64(tipo.MultBanco))),
		AfectaDeuda: tipo.AfectaDeuda,
	}
}

// mismoDia reports whether two timestamps fall on the same calendar day
// in local time. Used for the same-day edit/delete rule.
func mismoDia(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// mismaFecha reports whether a pure-date value matches ref's local calendar
// day. A date column comes back from the store at UTC midnight; converting
// it to a zone west of UTC would shift it to the previous day, so the date
// side keeps its own components.
func mismaFecha(fecha, ref time.Time) bool {
	fy, fm, fd := fecha.Date()
	ry, rm, rd := ref.Local().Date()
	return fy == ry && fm == rm && fd == rd
}
