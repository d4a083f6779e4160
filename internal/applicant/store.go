package applicant

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("applicant not found")

// Store persists applicant records keyed by session id. The rng is owned
// by the store so profile generation never touches package-level state.
type Store struct {
	Pool *pgxpool.Pool

	mu  sync.Mutex
	rng *rand.Rand
}

func NewStore(pool *pgxpool.Pool, rng *rand.Rand) *Store {
	return &Store{Pool: pool, rng: rng}
}

// Create generates a fresh profile and upserts the applicant row.
// Re-creating an existing session id replaces its prior state.
func (s *Store) Create(ctx context.Context, sessionID, name string) (*Record, error) {
	s.mu.Lock()
	profile := NewProfile(s.rng)
	s.mu.Unlock()

	_, err := s.Pool.Exec(
		ctx,
		`INSERT INTO applicants (session_id, name, phone, credit_score, pre_approved_limit, state)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (session_id) DO UPDATE SET
		    name = EXCLUDED.name,
		    phone = EXCLUDED.phone,
		    credit_score = EXCLUDED.credit_score,
		    pre_approved_limit = EXCLUDED.pre_approved_limit,
		    requested_amount = NULL,
		    tenure_months = NULL,
		    state = EXCLUDED.state,
		    updated_at = NOW()`,
		sessionID,
		name,
		profile.Phone,
		profile.CreditScore,
		profile.PreApprovedLimit,
		StateNeedsAnalysis,
	)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sessionID)
}

func (s *Store) Get(ctx context.Context, sessionID string) (*Record, error) {
	var rec Record
	err := s.Pool.QueryRow(
		ctx,
		`SELECT session_id, name, phone, credit_score, pre_approved_limit,
		        requested_amount, tenure_months, state, created_at, updated_at
		 FROM applicants
		 WHERE session_id = $1`,
		sessionID,
	).Scan(
		&rec.SessionID,
		&rec.Name,
		&rec.Phone,
		&rec.CreditScore,
		&rec.PreApprovedLimit,
		&rec.RequestedAmount,
		&rec.TenureMonths,
		&rec.State,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (s *Store) UpdateState(ctx context.Context, sessionID string, state State) error {
	_, err := s.Pool.Exec(
		ctx,
		`UPDATE applicants SET state = $1, updated_at = NOW() WHERE session_id = $2`,
		state, sessionID,
	)
	return err
}

func (s *Store) UpdateLoanDetails(ctx context.Context, sessionID string, amount, tenure int) error {
	_, err := s.Pool.Exec(
		ctx,
		`UPDATE applicants SET requested_amount = $1, tenure_months = $2, updated_at = NOW() WHERE session_id = $3`,
		amount, tenure, sessionID,
	)
	return err
}

func (s *Store) UpdateAmount(ctx context.Context, sessionID string, amount int) error {
	_, err := s.Pool.Exec(
		ctx,
		`UPDATE applicants SET requested_amount = $1, updated_at = NOW() WHERE session_id = $2`,
		amount, sessionID,
	)
	return err
}

func (s *Store) UpdateTenure(ctx context.Context, sessionID string, tenure int) error {
	_, err := s.Pool.Exec(
		ctx,
		`UPDATE applicants SET tenure_months = $1, updated_at = NOW() WHERE session_id = $2`,
		tenure, sessionID,
	)
	return err
}
