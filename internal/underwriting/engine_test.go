package underwriting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhuwinrag/ai-loan-bot/internal/applicant"
)

func record(score, limit, amount int) *applicant.Record {
	return &applicant.Record{
		SessionID:        "test-session",
		Name:             "Asha Rao",
		CreditScore:      score,
		PreApprovedLimit: limit,
		RequestedAmount:  &amount,
	}
}

func intPtr(v int) *int { return &v }

func TestEvaluate_LowScoreAlwaysRejects(t *testing.T) {
	// The score rule runs first: even an amount well inside the limit is
	// rejected when the score is below 700.
	dec := Evaluate(record(650, 30000, 10000), nil)
	require.Equal(t, StatusRejected, dec.Status)
	assert.Contains(t, dec.Reason, "650")
	assert.Contains(t, dec.Reason, "700")

	dec = Evaluate(record(699, 500000, 1000), intPtr(100000))
	assert.Equal(t, StatusRejected, dec.Status)
}

func TestEvaluate_AmountOverDoubleLimit(t *testing.T) {
	dec := Evaluate(record(720, 50000, 100001), nil)
	require.Equal(t, StatusRejected, dec.Status)
	assert.Contains(t, dec.Reason, "Rs. 100,001")
	assert.Contains(t, dec.Reason, "Rs. 50,000")
}

func TestEvaluate_WithinLimitApprovesInstantly(t *testing.T) {
	dec := Evaluate(record(720, 50000, 50000), nil)
	assert.Equal(t, StatusApprovedInstant, dec.Status)
	assert.Empty(t, dec.Reason)
}

func TestEvaluate_BetweenLimitAndDouble(t *testing.T) {
	// No income disclosed yet: we need a salary slip.
	dec := Evaluate(record(720, 30000, 35000), nil)
	assert.Equal(t, StatusNeedsIncomeProof, dec.Status)

	// EMI = (35000 + 35000*0.12*2)/24 = 43400/24 ≈ 1808.33, well under
	// half of a 40000 monthly income.
	dec = Evaluate(record(720, 30000, 35000), intPtr(40000))
	assert.Equal(t, StatusApprovedWithIncomeProof, dec.Status)

	// Income too low for the installment.
	dec = Evaluate(record(720, 30000, 35000), intPtr(3000))
	require.Equal(t, StatusRejected, dec.Status)
	assert.Contains(t, dec.Reason, "Rs. 3,000")
	assert.Contains(t, dec.Reason, "Rs. 1,808")
}

func TestEvaluate_EMIBoundaryIsExact(t *testing.T) {
	// amount=24000 -> EMI = (24000+5760)/24 = 1240 exactly. An income of
	// 2480 puts the ceiling exactly at the EMI, which passes.
	emi := MonthlyInstallment(24000)
	require.Equal(t, 1240.0, emi)

	dec := Evaluate(record(720, 20000, 24000), intPtr(2480))
	assert.Equal(t, StatusApprovedWithIncomeProof, dec.Status)

	dec = Evaluate(record(720, 20000, 24000), intPtr(2479))
	assert.Equal(t, StatusRejected, dec.Status)
}

func TestEvaluate_PartitionIsExhaustive(t *testing.T) {
	// For a qualifying score every amount lands in exactly one of the
	// three amount buckets, so the generic fallback never fires.
	limit := 50000
	for amount := 0; amount <= 4*limit; amount += 1000 {
		dec := Evaluate(record(800, limit, amount), nil)
		switch {
		case amount > 2*limit:
			assert.Equal(t, StatusRejected, dec.Status, "amount %d", amount)
			assert.NotEqual(t, "We are unable to process your loan at this time.", dec.Reason)
		case amount <= limit:
			assert.Equal(t, StatusApprovedInstant, dec.Status, "amount %d", amount)
		default:
			assert.Equal(t, StatusNeedsIncomeProof, dec.Status, "amount %d", amount)
		}
	}
}

func TestMonthlyInstallment(t *testing.T) {
	assert.InDelta(t, 1808.3333, MonthlyInstallment(35000), 0.001)
	assert.Equal(t, 0.0, MonthlyInstallment(0))
}

func TestDecisionApproved(t *testing.T) {
	assert.True(t, Decision{Status: StatusApprovedInstant}.Approved())
	assert.True(t, Decision{Status: StatusApprovedWithIncomeProof}.Approved())
	assert.False(t, Decision{Status: StatusNeedsIncomeProof}.Approved())
	assert.False(t, Decision{Status: StatusRejected}.Approved())
}
