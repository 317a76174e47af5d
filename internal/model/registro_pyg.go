package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegistroPyG is one line of the profit-and-loss journal.
// TipoRegistro: "ingreso" | "gasto"
type RegistroPyG struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha        time.Time       `gorm:"type:date;not null;index"`
	TipoRegistro string          `gorm:"type:varchar(10);not null"`
	Categoria    string          `gorm:"type:varchar(40);not null"`
	Concepto     string          `gorm:"not null"`
	Monto        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	OperadorID   uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
}
