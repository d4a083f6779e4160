package dialog

import (
	"github.com/Bhuwinrag/ai-loan-bot/internal/applicant"
	"github.com/Bhuwinrag/ai-loan-bot/internal/verification"
)

// outcome is the pure result of one conversation turn: the reply to send,
// the record mutations to apply, and whether underwriting should run in
// the same turn. An empty nextState means the state does not change.
type outcome struct {
	message    string
	nextState  applicant.State
	setAmount  *int
	setTenure  *int
	underwrite bool
}

func decideNeedsAnalysis(message string) outcome {
	if containsAny(message, "no", "not", "later") {
		return outcome{message: msgDeclineClose, nextState: applicant.StateEnded}
	}
	return decideNumbers(message, msgAskTenure, outcome{
		message:   msgAskAmountAndTenure,
		nextState: applicant.StateNeedsAnalysisAwaitingReply,
	})
}

func decideAwaitingReply(message string) outcome {
	if containsAny(message, "interest", "rate", "negotiate", "cheaper") {
		return outcome{message: msgNegotiation}
	}
	return decideNumbers(message, msgAskTenureShort, outcome{
		message: msgRepromptAmountTenure,
	})
}

// decideNumbers holds the shared numeric branching for the two
// information-gathering states: two or more integers fix both amount and
// tenure and move to verification; exactly one fixes the amount only;
// none falls through to noNumbers.
func decideNumbers(message string, askTenure func(int) string, noNumbers outcome) outcome {
	numbers := ExtractIntegers(message)
	switch {
	case len(numbers) >= 2:
		amount, tenure := AmountAndTenure(numbers)
		return outcome{
			message:   msgConfirmLoan(amount, tenure),
			nextState: applicant.StateVerification,
			setAmount: &amount,
			setTenure: &tenure,
		}
	case len(numbers) == 1:
		amount := numbers[0]
		return outcome{
			message:   askTenure(amount),
			nextState: applicant.StateAwaitingTenure,
			setAmount: &amount,
		}
	default:
		return noNumbers
	}
}

func decideAwaitingTenure(rec *applicant.Record, message string) outcome {
	numbers := ExtractIntegers(message)
	if len(numbers) == 0 {
		return outcome{message: msgRepromptTenure}
	}
	tenure := numbers[0]
	amount := 0
	if rec.RequestedAmount != nil {
		amount = *rec.RequestedAmount
	}
	return outcome{
		message:   msgTenureConfirm(amount, tenure),
		nextState: applicant.StateVerification,
		setTenure: &tenure,
	}
}

func decideVerification(message string) outcome {
	if verification.CheckPhone(verification.DigitsOnly(message)) {
		return outcome{underwrite: true}
	}
	return outcome{message: msgRepromptPhone}
}
