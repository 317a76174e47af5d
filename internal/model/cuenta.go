package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Well-known account codes seeded at migration time.
const (
	CuentaBancolombia  = "bancolombia"
	CuentaDavivienda   = "davivienda"
	CuentaCorresponsal = "corresponsal"
	CuentaPorCobrar    = "cuentas_por_cobrar"
	CuentaPorPagar     = "cuentas_por_pagar"
)

// Cuenta is an account ledger whose balance is derived on every read:
// SaldoInicial + SUM(entrada - salida) of movements with fecha >=
// FechaReferencia. No materialized balance exists.
type Cuenta struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	Nombre string    `gorm:"not null"`
	// TipoCuenta: "banco" | "cartera"
	TipoCuenta      string          `gorm:"type:varchar(20);not null"`
	SaldoInicial    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	FechaReferencia time.Time       `gorm:"not null"`
	Activa          bool            `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Movimientos []MovimientoBanco `gorm:"foreignKey:CuentaID"`
}
