package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de un turno de caja. "Sin apertura" is virtual: no row exists.
const (
	TurnoAbierto     = "abierto"
	TurnoCerrado     = "cerrado"
	TurnoCerradoAuto = "cerrado_auto" // cierre forzado de un turno olvidado; terminal
)

// Turno is one cash-register operating period for one operator on one
// calendar day. At most one turno per operator may be "abierto" at any time
// across all dates; opening a new one auto-closes a stale prior-date turno.
type Turno struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OperadorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Fecha      time.Time `gorm:"type:date;not null;index"`
	// AbiertoEn is the reference timestamp for every balance computation of
	// this turno. Reopening never changes it.
	AbiertoEn   time.Time       `gorm:"not null"`
	BaseInicial decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Estado      string          `gorm:"type:varchar(20);not null;default:'abierto'"`
	CerradoEn   *time.Time
	// Close fields: populated on Cerrar, reset to null on Reabrir.
	SaldoCalculado *decimal.Decimal `gorm:"type:decimal(14,2)"`
	MontoContado   *decimal.Decimal `gorm:"type:decimal(14,2)"`
	Diferencia     *decimal.Decimal `gorm:"type:decimal(14,2)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
