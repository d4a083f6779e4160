// Package letters generates and serves sanction letter PDFs for approved
// loans. Generation is best-effort from the dialog's point of view: a
// failure here downgrades to an "emailed later" reply, it never fails the
// conversation turn.
package letters

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"

	"github.com/Bhuwinrag/ai-loan-bot/internal/applicant"
)

const publicPrefix = "/letters/"

type Generator struct {
	Dir   string
	Store *Store

	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(dir string, store *Store, rng *rand.Rand) *Generator {
	return &Generator{Dir: dir, Store: store, rng: rng}
}

// Generate renders the sanction letter, writes it under Dir and records
// the artifact. Returns the public download path.
func (g *Generator) Generate(ctx context.Context, rec *applicant.Record) (string, error) {
	g.mu.Lock()
	rate := 11.5 + g.rng.Float64()*3.0
	g.mu.Unlock()

	data, err := BuildSanctionPDF(rec, rate)
	if err != nil {
		return "", fmt.Errorf("build sanction pdf: %w", err)
	}

	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create letters dir: %w", err)
	}

	fileName := fmt.Sprintf("letter_%s.pdf", safeName(rec.SessionID))
	fullPath := filepath.Join(g.Dir, fileName)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write sanction pdf: %w", err)
	}

	if g.Store != nil {
		if _, err := g.Store.Record(ctx, rec.SessionID, fileName, fullPath); err != nil {
			return "", fmt.Errorf("record sanction letter: %w", err)
		}
	}

	return publicPrefix + fileName, nil
}

// safeName keeps session ids filesystem-safe: anything outside
// [A-Za-z0-9._-] becomes an underscore.
func safeName(s string) string {
	out := []byte(s)
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '_', c == '-':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
