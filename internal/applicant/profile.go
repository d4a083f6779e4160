package applicant

import (
	"fmt"
	"math/rand"
)

// Profile holds the simulated bureau data assigned once at record creation.
type Profile struct {
	CreditScore      int
	PreApprovedLimit int
	Phone            string
}

// Limit candidates per credit-score tier.
var (
	tierHigh = []int{100000, 150000, 200000, 250000, 500000}
	tierMid  = []int{50000, 60000, 75000, 80000, 100000}
	tierLow  = []int{20000, 30000, 40000}
)

// NewProfile simulates a credit pull: score uniform in [600, 850], limit
// picked from the score's tier, and a synthetic 10-digit phone starting
// with 9. The phone is only used for the verification simulation.
func NewProfile(rng *rand.Rand) Profile {
	score := 600 + rng.Intn(251)
	return Profile{
		CreditScore:      score,
		PreApprovedLimit: limitForScore(rng, score),
		Phone:            fmt.Sprintf("9%09d", rng.Intn(900000000)+100000000),
	}
}

func limitForScore(rng *rand.Rand, score int) int {
	switch {
	case score > 750:
		return tierHigh[rng.Intn(len(tierHigh))]
	case score > 650:
		return tierMid[rng.Intn(len(tierMid))]
	default:
		return tierLow[rng.Intn(len(tierLow))]
	}
}

// LimitTier returns the candidate set for a score. Exposed so callers can
// check which tier a stored limit came from.
func LimitTier(score int) []int {
	switch {
	case score > 750:
		return tierHigh
	case score > 650:
		return tierMid
	default:
		return tierLow
	}
}
