package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarMovimientoRequest struct {
	TipoCodigo string `json:"tipo_codigo" validate:"required"`
	// Monto is a magnitude; the sign comes from the transaction type.
	Monto       decimal.Decimal `json:"monto"       validate:"gt=0"`
	Descripcion string          `json:"descripcion" validate:"required,min=3,max=300"`
	CuentaID    *string         `json:"cuenta_id"   validate:"omitempty,uuid"`
}

type ActualizarMovimientoRequest struct {
	Monto       *decimal.Decimal `json:"monto"       validate:"omitempty,gt=0"`
	Descripcion *string          `json:"descripcion" validate:"omitempty,min=3,max=300"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoResponse struct {
	ID          string          `json:"id"`
	Fecha       string          `json:"fecha"`
	TipoCodigo  string          `json:"tipo_codigo"`
	Monto       decimal.Decimal `json:"monto"`
	EfectoCaja  decimal.Decimal `json:"efecto_caja"`
	EfectoBanco decimal.Decimal `json:"efecto_banco"`
	Descripcion string          `json:"descripcion"`
	CuentaID    *string         `json:"cuenta_id,omitempty"`
	OperadorID  string          `json:"operador_id"`
}

type TipoTransaccionResponse struct {
	ID          string `json:"id"`
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	Categoria   string `json:"categoria"`
	MultCaja    int    `json:"mult_caja"`
	MultBanco   int    `json:"mult_banco"`
	AfectaDeuda bool   `json:"afecta_deuda"`
}
