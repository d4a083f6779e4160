// Package underwriting holds the loan decision rules. Evaluate is a pure
// function so the rules can be tested without a database or HTTP server.
package underwriting

import (
	"fmt"

	"github.com/Bhuwinrag/ai-loan-bot/internal/applicant"
	"github.com/Bhuwinrag/ai-loan-bot/internal/money"
)

type Status string

const (
	StatusApprovedInstant         Status = "approved_instantly"
	StatusApprovedWithIncomeProof Status = "approved_with_salary"
	StatusNeedsIncomeProof        Status = "needs_salary_slip"
	StatusRejected                Status = "rejected"
)

type Decision struct {
	Status Status
	// Reason is set only for rejections and is shown to the applicant
	// verbatim.
	Reason string
}

func (d Decision) Approved() bool {
	return d.Status == StatusApprovedInstant || d.Status == StatusApprovedWithIncomeProof
}

// Loan pricing used for the income-proof affordability check.
const (
	annualRate       = 0.12
	pricedYears      = 2
	pricedMonths     = 24
	emiIncomeCeiling = 0.5
	minCreditScore   = 700
)

// Evaluate runs the underwriting rules in strict order; the first matching
// rule wins. monthlyIncome is nil until a salary slip has been processed.
func Evaluate(rec *applicant.Record, monthlyIncome *int) Decision {
	score := rec.CreditScore
	limit := rec.PreApprovedLimit
	amount := 0
	if rec.RequestedAmount != nil {
		amount = *rec.RequestedAmount
	}

	if score < minCreditScore {
		return Decision{
			Status: StatusRejected,
			Reason: fmt.Sprintf("Your credit score is %d, which is below our minimum requirement of %d.", score, minCreditScore),
		}
	}
	if amount > 2*limit {
		return Decision{
			Status: StatusRejected,
			Reason: fmt.Sprintf("The requested amount of %s is more than double your pre-approved limit of %s.",
				money.Rupees(amount), money.Rupees(limit)),
		}
	}
	if amount <= limit {
		return Decision{Status: StatusApprovedInstant}
	}
	if amount <= 2*limit {
		if monthlyIncome == nil {
			return Decision{Status: StatusNeedsIncomeProof}
		}
		emi := MonthlyInstallment(amount)
		if emi <= emiIncomeCeiling*float64(*monthlyIncome) {
			return Decision{Status: StatusApprovedWithIncomeProof}
		}
		return Decision{
			Status: StatusRejected,
			Reason: fmt.Sprintf("Your monthly income of %s is not sufficient for an EMI of Rs. %s.",
				money.Rupees(*monthlyIncome), money.FormatRupeesRounded(emi)),
		}
	}

	// Unreachable given the partition above; kept as a safety net.
	return Decision{
		Status: StatusRejected,
		Reason: "We are unable to process your loan at this time.",
	}
}

// MonthlyInstallment computes the flat-rate EMI used in the affordability
// check: 12% per annum over 2 years, paid across 24 months. No rounding.
func MonthlyInstallment(amount int) float64 {
	interest := float64(amount) * annualRate * pricedYears
	totalPayable := float64(amount) + interest
	return totalPayable / pricedMonths
}
