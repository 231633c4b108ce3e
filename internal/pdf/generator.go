package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders the funding agreement for a contract.
func (g *Generator) Generate(doc model.ContractDocument) ([]byte, error) {
	contract := doc.Contract

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, "Funding Agreement", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Contract %s", contract.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Effective %s", formatDate(contract.StartDate)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	addPartyBlock(pdf, g.fontName, "Sponsor", doc.SponsorName)
	pdf.Ln(2)
	addPartyBlock(pdf, g.fontName, "Dreamer", doc.DreamerName)
	pdf.Ln(6)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Terms", "", 1, "L", false, 0, "")

	headers := []string{"Term", "Value"}
	colWidths := []float64{80, 90}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)

	rows := [][]string{
		{"Funding amount", fmt.Sprintf("$%.2f", contract.Amount)},
		{"Duration", fmt.Sprintf("%d months", contract.DurationMonths)},
		{"Funding type", string(contract.Type)},
		{"Weekly payment", fmt.Sprintf("$%.2f", contract.WeeklyPayment)},
		{"Total payments", fmt.Sprintf("%d", contract.TotalPayments)},
	}
	if contract.InterestRate != nil {
		rows = append(rows, []string{"Interest rate", fmt.Sprintf("%.2f%%", *contract.InterestRate)})
	}
	for _, row := range rows {
		drawTableRow(pdf, g.fontName, row, colWidths, false)
	}

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Payments received to date: %d of %d (%s)",
		contract.PaymentsReceived, contract.TotalPayments, strings.ToUpper(string(contract.Status))),
		"", 1, "L", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Signatures", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	signatureBlock(pdf, g.fontName, "Sponsor", doc.SponsorName)
	signatureBlock(pdf, g.fontName, "Dreamer", doc.DreamerName)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addPartyBlock(pdf *gofpdf.Fpdf, fontName, role, name string) {
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, role, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	pdf.MultiCell(0, 5, safeValue(name), "", "L", false)
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func signatureBlock(pdf *gofpdf.Fpdf, fontName, label, name string) {
	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s: ______________________ /%s/", label, safeValue(name)), "", 1, "L", false, 0, "")
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("January 2, 2006")
}
