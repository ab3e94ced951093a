// internal/report/pdf.go
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Render lays the document out as a single PDF. Layout only: every number
// and line in the output comes from the compiled document.
func Render(doc *Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // core fonts are cp1252
	pdf.SetTitle(tr(doc.Title), false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case Heading:
			renderHeading(pdf, tr, b)
		case KeyValueBlock:
			renderKeyValues(pdf, tr, b)
		case TableBlock:
			renderTable(pdf, tr, b)
		case Paragraph:
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, tr(b.Text), "", "L", false)
			pdf.Ln(2)
		default:
			return nil, fmt.Errorf("unknown report block %T", block)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}

func renderHeading(pdf *fpdf.Fpdf, tr func(string) string, h Heading) {
	if h.Level <= 1 {
		pdf.SetFont("Helvetica", "B", 16)
	} else {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
	}
	pdf.CellFormat(0, 8, tr(h.Text), "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func renderKeyValues(pdf *fpdf.Fpdf, tr func(string) string, kv KeyValueBlock) {
	for _, pair := range kv.Pairs {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(55, 5, tr(pair.Key), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(pair.Value), "", "L", false)
	}
	pdf.Ln(2)
}

func renderTable(pdf *fpdf.Fpdf, tr func(string) string, t TableBlock) {
	if len(t.Columns) == 0 {
		return
	}
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(t.Columns))

	pdf.SetFont("Helvetica", "B", 9)
	for _, col := range t.Columns {
		pdf.CellFormat(colWidth, 6, tr(col), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range t.Rows {
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colWidth, 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(2)
}
