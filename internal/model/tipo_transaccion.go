package model

import (
	"time"

	"github.com/google/uuid"
)

// Stable configuration-time codes for transaction types. Services resolve
// types by Codigo, never by matching display names.
const (
	TipoDeposito      = "deposito"       // cliente consigna efectivo en el corresponsal
	TipoRetiro        = "retiro"         // cliente retira efectivo
	TipoPagoRecibo    = "pago_recibo"    // pago de recibo/servicio en efectivo
	TipoIngresoManual = "ingreso_manual" // entrada de efectivo sin contraparte bancaria
	TipoEgresoManual  = "egreso_manual"  // salida de efectivo sin contraparte bancaria
	TipoPrestamo      = "prestamo"       // efectivo entregado a crédito, aumenta deuda
	TipoAbonoCredito  = "abono_credito"  // abono de un cliente a su deuda
	TipoAjusteSaldo   = "ajuste_saldo"   // corrección generada por el sistema
)

// TipoTransaccion defines how a movement of this type affects each ledger.
// Multiplicadores are fixed at configuration time (-1, 0 or +1); the effect
// of a movement is entirely determined by (tipo, monto).
type TipoTransaccion struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	Nombre string    `gorm:"not null"`
	// Categoria: "corresponsal" | "caja" | "cartera" | "sistema"
	Categoria string `gorm:"type:varchar(20);not null"`
	// Signed multipliers applied to the movement magnitude per ledger.
	MultCaja  int `gorm:"not null"`
	MultBanco int `gorm:"not null"`
	// AfectaDeuda marks types that increase outstanding company debt.
	AfectaDeuda bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
}
