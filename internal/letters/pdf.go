package letters

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/Bhuwinrag/ai-loan-bot/internal/applicant"
	"github.com/Bhuwinrag/ai-loan-bot/internal/money"
)

// BuildSanctionPDF renders the sanction letter for an approved applicant.
// rate is the quoted annual interest rate in percent.
func BuildSanctionPDF(rec *applicant.Record, rate float64) ([]byte, error) {
	amount := 0
	if rec.RequestedAmount != nil {
		amount = *rec.RequestedAmount
	}
	tenure := 0
	if rec.TenureMonths != nil {
		tenure = *rec.TenureMonths
	}
	amountStr := money.Rupees(amount)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Personal Loan Sanction Letter", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Personal Loan Sanction Letter", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.Ln(10)
	pdf.CellFormat(0, 10, fmt.Sprintf("Dear %s,", rec.Name), "", 1, "L", false, 0, "")
	pdf.Ln(5)
	pdf.MultiCell(0, 7, fmt.Sprintf("We are pleased to inform you that your personal loan of %s has been sanctioned.", amountStr), "", "L", false)
	pdf.Ln(5)

	pdf.CellFormat(0, 7, fmt.Sprintf("Loan Amount: %s", amountStr), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Loan Tenure: %d months", tenure), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Interest Rate: %.2f%% p.a.", rate), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.CellFormat(0, 10, "This is an automated letter and does not require a signature.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
