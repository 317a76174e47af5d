package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarMovimientoBancoRequest struct {
	CuentaID  string `json:"cuenta_id" validate:"required,uuid"`
	Direccion string `json:"direccion" validate:"required,oneof=entrada salida"`
	// Monto is a magnitude; Direccion decides which column it lands in.
	Monto       decimal.Decimal `json:"monto"       validate:"gt=0"`
	Descripcion string          `json:"descripcion" validate:"required,min=3,max=300"`
}

type ActualizarMovimientoBancoRequest struct {
	Monto       *decimal.Decimal `json:"monto"       validate:"omitempty,gt=0"`
	Descripcion *string          `json:"descripcion" validate:"omitempty,min=3,max=300"`
}

// AjusteRequest: SaldoReal is a pointer so that a verified balance of zero
// is distinguishable from an absent field.
type AjusteRequest struct {
	CuentaID  string           `json:"cuenta_id" validate:"required,uuid"`
	SaldoReal *decimal.Decimal `json:"saldo_real"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CuentaResponse struct {
	ID         string          `json:"id"`
	Codigo     string          `json:"codigo"`
	Nombre     string          `json:"nombre"`
	TipoCuenta string          `json:"tipo_cuenta"`
	Saldo      decimal.Decimal `json:"saldo"`
}

type SaldoCuentaResponse struct {
	CuentaID string          `json:"cuenta_id"`
	Codigo   string          `json:"codigo"`
	Nombre   string          `json:"nombre"`
	Saldo    decimal.Decimal `json:"saldo"`
	Corte    string          `json:"corte"`
}

type MovimientoBancoResponse struct {
	ID           string          `json:"id"`
	CuentaID     string          `json:"cuenta_id"`
	Fecha        string          `json:"fecha"`
	Entrada      decimal.Decimal `json:"entrada"`
	Salida       decimal.Decimal `json:"salida"`
	Descripcion  string          `json:"descripcion"`
	OperadorID   string          `json:"operador_id"`
	ReferenciaID *string         `json:"referencia_id,omitempty"`
}

// AjusteResponse reports the adjustment that was written and the balance
// transition it produced.
type AjusteResponse struct {
	Movimiento    MovimientoBancoResponse `json:"movimiento"`
	SaldoAnterior decimal.Decimal         `json:"saldo_anterior"`
	SaldoNuevo    decimal.Decimal         `json:"saldo_nuevo"`
	Diferencia    decimal.Decimal         `json:"diferencia"`
}
