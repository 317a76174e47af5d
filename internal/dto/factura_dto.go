package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarFacturaRequest struct {
	Proveedor        string          `json:"proveedor"         validate:"required,min=2,max=150"`
	NumeroFactura    string          `json:"numero_factura"    validate:"required,min=1,max=60"`
	Monto            decimal.Decimal `json:"monto"             validate:"gt=0"`
	FechaEmision     string          `json:"fecha_emision"     validate:"required,datetime=2006-01-02"`
	FechaVencimiento string          `json:"fecha_vencimiento" validate:"required,datetime=2006-01-02"`
}

type PagarFacturaRequest struct {
	CuentaID string `json:"cuenta_id" validate:"required,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FacturaResponse struct {
	ID               string          `json:"id"`
	Proveedor        string          `json:"proveedor"`
	NumeroFactura    string          `json:"numero_factura"`
	Monto            decimal.Decimal `json:"monto"`
	FechaEmision     string          `json:"fecha_emision"`
	FechaVencimiento string          `json:"fecha_vencimiento"`
	Estado           string          `json:"estado"`
	AlertaEnviada    bool            `json:"alerta_enviada"`
	PagadaEn         *string         `json:"pagada_en,omitempty"`
	CuentaPagoID     *string         `json:"cuenta_pago_id,omitempty"`
}

type FacturaListResponse struct {
	Items []FacturaResponse `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
