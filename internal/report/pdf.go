package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"riskeval/internal/risk"
)

// ErrNoRecords is returned when an exporter is handed an empty
// collection. The caller turns it into a user-visible notice; no
// document is produced.
var ErrNoRecords = errors.New("no records to report")

// pageBreakY is the detail-section Y position (mm) past which a new page
// starts, matching the original layout.
const pageBreakY = 250.0

// WritePDF produces the paginated report document: a header, the
// tier-count summary, the record table, and one detail block per record.
// generated is the display-formatted report date.
func WritePDF(w io.Writer, records []risk.Record, generated string) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; accented Spanish text needs translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	writeHeader(pdf, tr, generated)
	writeSummaryBlock(pdf, tr, Summarize(records))
	writeTable(pdf, tr, records)
	writeDetails(pdf, tr, records)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, generated string) {
	pdf.SetFillColor(102, 126, 234)
	pdf.Rect(0, 0, 210, 35, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(0, 10)
	pdf.CellFormat(210, 10, tr("Workplace Risk Assessment Report"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(210, 7, tr("NTP 330 methodology - INSHT"), "", 1, "C", false, 0, "")
	pdf.CellFormat(210, 7, tr("Date: "+generated), "", 1, "C", false, 0, "")
}

func writeSummaryBlock(pdf *fpdf.Fpdf, tr func(string) string, s Summary) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(14, 42)
	pdf.CellFormat(0, 8, "Executive Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(14)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total risks assessed: %d", s.Total), "", 1, "L", false, 0, "")
	for _, tier := range []risk.Tier{risk.TierI, risk.TierII, risk.TierIII, risk.TierIV} {
		pdf.SetX(14)
		line := fmt.Sprintf("Tier %s (%s): %d", tier, tier.Label(), s.Count(tier))
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
}

func writeTable(pdf *fpdf.Fpdf, tr func(string) string, records []risk.Record) {
	widths := []float64{52, 38, 28, 18, 14, 32}
	headers := []string{"Risk", "Area", "ND x NE x NC", "NR", "Tier", "Action"}

	pdf.SetY(pdf.GetY() + 6)
	pdf.SetX(14)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(102, 126, 234)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	pdf.SetFillColor(245, 245, 245)
	for _, r := range records {
		cells := []string{
			r.Name,
			r.Area,
			fmt.Sprintf("%d x %d x %d", r.Deficiency, r.Exposure, r.Consequence),
			fmt.Sprintf("%d", r.Score),
			string(r.Tier),
			r.TierLabel,
		}
		pdf.SetX(14)
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}
}

func writeDetails(pdf *fpdf.Fpdf, tr func(string) string, records []risk.Record) {
	y := pdf.GetY() + 12

	for i, r := range records {
		if y > pageBreakY {
			pdf.AddPage()
			y = 20
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(14, y)
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("%d. %s", i+1, r.Name)), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetX(14)
		pdf.CellFormat(0, 5, tr("Area: "+r.Area), "", 1, "L", false, 0, "")
		pdf.SetX(14)
		line := fmt.Sprintf("Risk score: %d - Tier %s (%s), recorded %s", r.Score, r.Tier, r.TierLabel, r.CreatedDate)
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")

		if r.Description != "" {
			pdf.SetX(14)
			pdf.CellFormat(0, 5, "Description:", "", 1, "L", false, 0, "")
			pdf.SetX(14)
			pdf.MultiCell(180, 5, tr(r.Description), "", "L", false)
		}
		if r.Mitigations != "" {
			pdf.SetX(14)
			pdf.CellFormat(0, 5, "Preventive measures:", "", 1, "L", false, 0, "")
			pdf.SetX(14)
			pdf.MultiCell(180, 5, tr(r.Mitigations), "", "L", false)
		}

		y = pdf.GetY() + 8
	}
}
