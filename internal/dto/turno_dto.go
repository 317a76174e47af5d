package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Pointer amounts: zero is a legal value (empty drawer), so presence is
// checked against nil instead of a required tag that would reject 0.
type AbrirTurnoRequest struct {
	BaseInicial *decimal.Decimal `json:"base_inicial" validate:"omitempty,gte=0"`
}

type CerrarTurnoRequest struct {
	MontoContado *decimal.Decimal `json:"monto_contado" validate:"omitempty,gte=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// TurnoResponse carries estado "sin_apertura" with zero-value fields when the
// operator has no shift today.
type TurnoResponse struct {
	ID          string          `json:"id,omitempty"`
	OperadorID  string          `json:"operador_id,omitempty"`
	Fecha       string          `json:"fecha,omitempty"`
	AbiertoEn   string          `json:"abierto_en,omitempty"`
	BaseInicial decimal.Decimal `json:"base_inicial"`
	Estado      string          `json:"estado"`

	CerradoEn      *string          `json:"cerrado_en,omitempty"`
	SaldoCalculado *decimal.Decimal `json:"saldo_calculado,omitempty"`
	MontoContado   *decimal.Decimal `json:"monto_contado,omitempty"`
	Diferencia     *decimal.Decimal `json:"diferencia,omitempty"`
}

type TurnoListResponse struct {
	Items []TurnoResponse `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
