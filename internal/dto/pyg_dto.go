package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarPyGRequest struct {
	Fecha        string          `json:"fecha"         validate:"omitempty,datetime=2006-01-02"`
	TipoRegistro string          `json:"tipo_registro" validate:"required,oneof=ingreso gasto"`
	Categoria    string          `json:"categoria"     validate:"required,min=2,max=40"`
	Concepto     string          `json:"concepto"      validate:"required,min=3,max=300"`
	Monto        decimal.Decimal `json:"monto"         validate:"gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RegistroPyGResponse struct {
	ID           string          `json:"id"`
	Fecha        string          `json:"fecha"`
	TipoRegistro string          `json:"tipo_registro"`
	Categoria    string          `json:"categoria"`
	Concepto     string          `json:"concepto"`
	Monto        decimal.Decimal `json:"monto"`
	OperadorID   string          `json:"operador_id"`
}

type ResumenPyGResponse struct {
	Desde    string          `json:"desde"`
	Hasta    string          `json:"hasta"`
	Ingresos decimal.Decimal `json:"ingresos"`
	Gastos   decimal.Decimal `json:"gastos"`
	Utilidad decimal.Decimal `json:"utilidad"`
}
