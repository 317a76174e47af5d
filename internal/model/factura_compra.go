package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de una factura de compra.
const (
	FacturaPendiente = "pendiente"
	FacturaPagada    = "pagada"
	FacturaVencida   = "vencida"
)

// FacturaCompra is a purchase invoice tracked for due-date alerts.
// The vencimiento cron flips pendiente → vencida past the due date and
// enqueues one alert email per invoice entering the look-ahead window.
type FacturaCompra struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Proveedor        string          `gorm:"not null"`
	NumeroFactura    string          `gorm:"uniqueIndex;not null"`
	Monto            decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	FechaEmision     time.Time       `gorm:"type:date;not null"`
	FechaVencimiento time.Time       `gorm:"type:date;not null;index"`
	Estado           string          `gorm:"type:varchar(20);not null;default:'pendiente';index"`
	AlertaEnviada    bool            `gorm:"not null;default:false"`
	PagadaEn         *time.Time
	// CuentaPagoID records which account ledger the payment went out of.
	CuentaPagoID *uuid.UUID `gorm:"type:uuid"`
	OperadorID   uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
