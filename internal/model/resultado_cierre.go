package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Clasificaciones del resultado de cierre diario.
const (
	CierreCuadrado = "cuadrado"
	CierreSobrante = "sobrante"
	CierreFaltante = "faltante"
)

// ResultadoCierre is the daily reconciliation snapshot: the system-side
// balances used as formula inputs, the physically counted sub-amounts, and
// the resulting classification. Once saved it is immutable history — a
// report, not a movement; it never affects any ledger balance.
type ResultadoCierre struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha      time.Time `gorm:"type:date;not null;index"`
	GuardadoEn time.Time `gorm:"not null"`
	OperadorID uuid.UUID `gorm:"type:uuid;not null"`

	// Formula inputs as they were at save time.
	SaldoCaja      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	SaldoPorPagar  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	SaldoPorCobrar decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	BaseManual     decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	// Physically counted sub-amounts.
	Efectivo       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Monedas        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Consignaciones decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	QR             decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Datafono       decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	TotalEsperado decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TotalFisico   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Diferencia    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Clasificacion string          `gorm:"type:varchar(20);not null"`
	Notas         *string
	CreatedAt     time.Time
}
