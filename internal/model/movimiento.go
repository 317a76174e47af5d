package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Movimiento is one signed monetary event in the cash ledger.
// Monto is always a non-negative magnitude; the sign each ledger sees is
// derived from the type's multipliers, never stored.
//
// Movements are editable and deletable only on the calendar day they were
// registered — the same-day rule protects already-closed reconciliations.
type Movimiento struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha  time.Time `gorm:"index;not null"`
	TipoID uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo   *TipoTransaccion
	// CuentaID links the bank-side effect to a specific account; nil when the
	// type only touches the cash drawer.
	CuentaID    *uuid.UUID      `gorm:"type:uuid;index"`
	Monto       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Descripcion string          `gorm:"not null"`
	OperadorID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MovimientoBanco is one row of a dual-column account ledger (bancolombia,
// davivienda, corresponsal, cuentas por cobrar/pagar). Exactly one of
// Entrada/Salida is non-zero; the service layer enforces the convention.
type MovimientoBanco struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CuentaID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Fecha       time.Time       `gorm:"index;not null"`
	Entrada     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Salida      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Descripcion string          `gorm:"not null"`
	OperadorID  uuid.UUID       `gorm:"type:uuid;not null"`
	// ReferenciaID links to the originating FacturaCompra or adjustment action.
	ReferenciaID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
