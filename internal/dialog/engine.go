// Package dialog drives the scripted loan conversation: one Step per
// inbound message, mapping (stored state, free text) to (reply, record
// mutations), and handing off to underwriting once identity is verified.
package dialog

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/Bhuwinrag/ai-loan-bot/internal/applicant"
	"github.com/Bhuwinrag/ai-loan-bot/internal/underwriting"
)

// StartSentinel is sent by the chat widget when it opens a fresh
// conversation; it prompts for a name without creating a record.
const StartSentinel = "__START__"

// ActionShowUploadButton tells the widget to reveal the salary slip
// upload affordance.
const ActionShowUploadButton = "show_upload_button"

var ErrUnknownSession = errors.New("unknown session")

// Store is the slice of the applicant store the engine needs.
type Store interface {
	Create(ctx context.Context, sessionID, name string) (*applicant.Record, error)
	Get(ctx context.Context, sessionID string) (*applicant.Record, error)
	UpdateState(ctx context.Context, sessionID string, state applicant.State) error
	UpdateLoanDetails(ctx context.Context, sessionID string, amount, tenure int) error
	UpdateAmount(ctx context.Context, sessionID string, amount int) error
	UpdateTenure(ctx context.Context, sessionID string, tenure int) error
}

// LetterGenerator produces the sanction artifact for an approved record
// and returns its public download path.
type LetterGenerator interface {
	Generate(ctx context.Context, rec *applicant.Record) (string, error)
}

type Metadata struct {
	Name   string
	Amount string
}

type Reply struct {
	Message string
	Action  string
}

type Engine struct {
	store   Store
	letters LetterGenerator
}

func NewEngine(store Store, letters LetterGenerator) *Engine {
	return &Engine{store: store, letters: letters}
}

// Step handles one inbound chat message for a session.
func (e *Engine) Step(ctx context.Context, sessionID, message string, meta *Metadata) (*Reply, error) {
	rec, err := e.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, applicant.ErrNotFound) {
			return e.stepNewSession(ctx, sessionID, message, meta)
		}
		return nil, err
	}

	switch rec.State {
	case applicant.StateNeedsAnalysis:
		return e.apply(ctx, rec, decideNeedsAnalysis(message))
	case applicant.StateNeedsAnalysisAwaitingReply:
		return e.apply(ctx, rec, decideAwaitingReply(message))
	case applicant.StateAwaitingTenure:
		return e.apply(ctx, rec, decideAwaitingTenure(rec, message))
	case applicant.StateVerification:
		return e.apply(ctx, rec, decideVerification(message))
	case applicant.StateAwaitingSalarySlip:
		return &Reply{Message: msgUploadReminder}, nil
	case applicant.StateEnded:
		return &Reply{Message: msgAlreadyProcessed}, nil
	default:
		return nil, errors.New("unhandled conversation state: " + string(rec.State))
	}
}

// SubmitIncome is the upload collaborator's entry point: a disclosed
// monthly income re-enters underwriting for a record that is waiting on a
// salary slip.
func (e *Engine) SubmitIncome(ctx context.Context, sessionID string, monthlyIncome int) (*Reply, error) {
	rec, err := e.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, applicant.ErrNotFound) {
			return nil, ErrUnknownSession
		}
		return nil, err
	}

	switch rec.State {
	case applicant.StateAwaitingSalarySlip:
		return e.runUnderwriting(ctx, rec, &monthlyIncome)
	case applicant.StateEnded:
		return &Reply{Message: msgAlreadyProcessed}, nil
	default:
		return &Reply{Message: msgSlipNotNeededYet}, nil
	}
}

// stepNewSession covers the no-record-yet branches: the start sentinel,
// campaign metadata, and treating the first free-text message as a name.
func (e *Engine) stepNewSession(ctx context.Context, sessionID, message string, meta *Metadata) (*Reply, error) {
	if meta != nil && strings.TrimSpace(meta.Name) != "" {
		rec, err := e.store.Create(ctx, sessionID, strings.TrimSpace(meta.Name))
		if err != nil {
			return nil, err
		}
		if numbers := ExtractIntegers(meta.Amount); len(numbers) > 0 {
			if err := e.store.UpdateAmount(ctx, sessionID, numbers[0]); err != nil {
				return nil, err
			}
		}
		// Skips the greeting turn: the record starts in NEEDS_ANALYSIS
		// and the offer goes out immediately.
		return &Reply{Message: msgCampaignOffer(rec.Name, rec.PreApprovedLimit)}, nil
	}

	if message == StartSentinel {
		return &Reply{Message: msgAskName}, nil
	}

	name := strings.TrimSpace(message)
	if utf8.RuneCountInString(name) < 2 {
		return &Reply{Message: msgInvalidName}, nil
	}

	rec, err := e.store.Create(ctx, sessionID, name)
	if err != nil {
		return nil, err
	}
	return &Reply{Message: msgSalesGreeting(rec.FirstName(), rec.PreApprovedLimit)}, nil
}

// apply performs the mutations an outcome calls for: loan details first,
// then either the underwriting hand-off or the state transition.
func (e *Engine) apply(ctx context.Context, rec *applicant.Record, out outcome) (*Reply, error) {
	switch {
	case out.setAmount != nil && out.setTenure != nil:
		if err := e.store.UpdateLoanDetails(ctx, rec.SessionID, *out.setAmount, *out.setTenure); err != nil {
			return nil, err
		}
		rec.RequestedAmount = out.setAmount
		rec.TenureMonths = out.setTenure
	case out.setAmount != nil:
		if err := e.store.UpdateAmount(ctx, rec.SessionID, *out.setAmount); err != nil {
			return nil, err
		}
		rec.RequestedAmount = out.setAmount
	case out.setTenure != nil:
		if err := e.store.UpdateTenure(ctx, rec.SessionID, *out.setTenure); err != nil {
			return nil, err
		}
		rec.TenureMonths = out.setTenure
	}

	if out.underwrite {
		return e.runUnderwriting(ctx, rec, nil)
	}

	if out.nextState != "" {
		if err := e.store.UpdateState(ctx, rec.SessionID, out.nextState); err != nil {
			return nil, err
		}
	}
	return &Reply{Message: out.message}, nil
}

// runUnderwriting evaluates the record and turns the decision into a
// reply plus a terminal (or salary-slip) state.
func (e *Engine) runUnderwriting(ctx context.Context, rec *applicant.Record, income *int) (*Reply, error) {
	dec := underwriting.Evaluate(rec, income)

	amount := 0
	if rec.RequestedAmount != nil {
		amount = *rec.RequestedAmount
	}

	switch {
	case dec.Approved():
		message := msgApproved(rec.FirstName(), amount)
		if path, err := e.letters.Generate(ctx, rec); err == nil {
			message += letterGeneratedSuffix + path
		} else {
			// Letter generation is best-effort; the approval stands.
			log.Printf("sanction letter generation failed for %s: %v", rec.SessionID, err)
			message += letterFailedSuffix
		}
		if err := e.store.UpdateState(ctx, rec.SessionID, applicant.StateEnded); err != nil {
			return nil, err
		}
		return &Reply{Message: message}, nil

	case dec.Status == underwriting.StatusNeedsIncomeProof:
		if err := e.store.UpdateState(ctx, rec.SessionID, applicant.StateAwaitingSalarySlip); err != nil {
			return nil, err
		}
		return &Reply{Message: msgNeedsSalarySlip(amount), Action: ActionShowUploadButton}, nil

	default:
		if err := e.store.UpdateState(ctx, rec.SessionID, applicant.StateEnded); err != nil {
			return nil, err
		}
		return &Reply{Message: msgRejected(rec.FirstName(), dec.Reason)}, nil
	}
}
