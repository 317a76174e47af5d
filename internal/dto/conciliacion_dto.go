package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ConciliacionRequest carries the physically counted sub-amounts plus the
// manual base excluded from the expected total.
type ConciliacionRequest struct {
	BaseManual     decimal.Decimal `json:"base_manual"`
	Efectivo       decimal.Decimal `json:"efectivo"`
	Monedas        decimal.Decimal `json:"monedas"`
	Consignaciones decimal.Decimal `json:"consignaciones"`
	QR             decimal.Decimal `json:"qr"`
	Datafono       decimal.Decimal `json:"datafono"`
}

type GuardarConciliacionRequest struct {
	ConciliacionRequest
	Notas *string `json:"notas" validate:"omitempty,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ConciliacionResponse struct {
	SaldoCaja      decimal.Decimal `json:"saldo_caja"`
	SaldoPorPagar  decimal.Decimal `json:"saldo_por_pagar"`
	SaldoPorCobrar decimal.Decimal `json:"saldo_por_cobrar"`
	BaseManual     decimal.Decimal `json:"base_manual"`
	TotalEsperado  decimal.Decimal `json:"total_esperado"`
	TotalFisico    decimal.Decimal `json:"total_fisico"`
	Diferencia     decimal.Decimal `json:"diferencia"`
	Clasificacion  string          `json:"clasificacion"`
}

type ResultadoCierreResponse struct {
	ID         string `json:"id"`
	Fecha      string `json:"fecha"`
	GuardadoEn string `json:"guardado_en"`
	OperadorID string `json:"operador_id"`

	SaldoCaja      decimal.Decimal `json:"saldo_caja"`
	SaldoPorPagar  decimal.Decimal `json:"saldo_por_pagar"`
	SaldoPorCobrar decimal.Decimal `json:"saldo_por_cobrar"`
	BaseManual     decimal.Decimal `json:"base_manual"`

	Efectivo       decimal.Decimal `json:"efectivo"`
	Monedas        decimal.Decimal `json:"monedas"`
	Consignaciones decimal.Decimal `json:"consignaciones"`
	QR             decimal.Decimal `json:"qr"`
	Datafono       decimal.Decimal `json:"datafono"`

	TotalEsperado decimal.Decimal `json:"total_esperado"`
	TotalFisico   decimal.Decimal `json:"total_fisico"`
	Diferencia    decimal.Decimal `json:"diferencia"`
	Clasificacion string          `json:"clasificacion"`
	Notas         *string         `json:"notas,omitempty"`
}
