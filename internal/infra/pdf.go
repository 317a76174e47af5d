package infra

// pdf.go — PDF export of a saved reconciliation result using go-pdf/fpdf.
// A5 portrait report: header, formula inputs, counted sub-amounts, totals
// and classification.

import (
	"fmt"
	"os"
	"path/filepath"

	"corresponsal/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateResultadoPDF writes the cierre report for a saved ResultadoCierre.
// storagePath is created if needed. Returns the absolute path of the file.
func GenerateResultadoPDF(res *model.ResultadoCierre, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("cierre_%s_%s.pdf", res.Fecha.Format("2006-01-02"), res.ID.String()[:8])
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Cierre de caja", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, res.Fecha.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, "Guardado: "+res.GuardadoEn.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(3)

	labelW := contentW * 0.6
	valueW := contentW * 0.4

	row := func(label, value string) {
		pdf.CellFormat(labelW, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, value, "", 1, "R", false, 0, "")
	}

	// ── Formula inputs ───────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 6, "Saldos del sistema", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	row("Saldo caja", "$"+res.SaldoCaja.StringFixed(2))
	row("Cuentas por pagar", "$"+res.SaldoPorPagar.StringFixed(2))
	row("Cuentas por cobrar", "$"+res.SaldoPorCobrar.StringFixed(2))
	row("Base manual", "$"+res.BaseManual.StringFixed(2))
	pdf.Ln(2)

	// ── Counted sub-amounts ──────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 6, "Conteo físico", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	row("Efectivo", "$"+res.Efectivo.StringFixed(2))
	row("Monedas", "$"+res.Monedas.StringFixed(2))
	row("Consignaciones", "$"+res.Consignaciones.StringFixed(2))
	row("QR", "$"+res.QR.StringFixed(2))
	row("Datáfono", "$"+res.Datafono.StringFixed(2))
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	row("Total esperado", "$"+res.TotalEsperado.StringFixed(2))
	row("Total físico", "$"+res.TotalFisico.StringFixed(2))
	row("Diferencia", "$"+res.Diferencia.StringFixed(2))
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 8, "Resultado: "+res.Clasificacion, "", 1, "C", false, 0, "")

	if res.Notas != nil && *res.Notas != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(contentW, 4, "Notas: "+*res.Notas, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
