package applicant

import (
	"strings"
	"time"
)

// State is the conversation state persisted on the applicant row.
// Transitions only move forward; StateEnded is terminal.
type State string

const (
	StateNeedsAnalysis              State = "NEEDS_ANALYSIS"
	StateNeedsAnalysisAwaitingReply State = "NEEDS_ANALYSIS_AWAITING_REPLY"
	StateAwaitingTenure             State = "AWAITING_TENURE"
	StateVerification               State = "VERIFICATION"
	StateAwaitingSalarySlip         State = "AWAITING_SALARY_SLIP"
	StateEnded                      State = "ENDED"
)

type Record struct {
	SessionID        string    `db:"session_id" json:"session_id"`
	Name             string    `db:"name" json:"name"`
	Phone            string    `db:"phone" json:"phone"`
	CreditScore      int       `db:"credit_score" json:"credit_score"`
	PreApprovedLimit int       `db:"pre_approved_limit" json:"pre_approved_limit"`
	RequestedAmount  *int      `db:"requested_amount" json:"requested_amount,omitempty"`
	TenureMonths     *int      `db:"tenure_months" json:"tenure_months,omitempty"`
	State            State     `db:"state" json:"state"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// FirstName returns the first whitespace-separated token of the
// applicant's name, used in conversational replies.
func (r *Record) FirstName() string {
	parts := strings.Fields(r.Name)
	if len(parts) == 0 {
		return r.Name
	}
	return parts[0]
}
