// Package sealer implements the proof-of-work search for ledger blocks.
package sealer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/canonical"
)

// MaxDifficulty is the number of hex digits in a SHA-256 hash.
const MaxDifficulty = 64

// ctxCheckInterval is how many attempts run between context checks.
const ctxCheckInterval = 1024

var (
	// ErrAttemptsExhausted is returned when no nonce satisfied the target within the attempt cap.
	ErrAttemptsExhausted = errors.New("seal attempts exhausted")
	// ErrInvalidDifficulty is returned for difficulties outside 0..MaxDifficulty.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// Result describes a successful seal.
type Result struct {
	Nonce    uint64
	Hash     string
	Attempts uint64
}

// Sealer searches nonces until a block hash has the required number of leading zeros.
type Sealer struct {
	maxAttempts uint64
	hash        func(map[string]any) (string, error)
}

// New constructs a Sealer. maxAttempts of zero removes the cap.
func New(maxAttempts uint64) *Sealer {
	return &Sealer{
		maxAttempts: maxAttempts,
		hash:        canonical.Hash,
	}
}

// Seal sets fields["nonce"] to 0, 1, 2, ... until the canonical hash meets difficulty.
// fields must not contain "hash". The map is modified in place; on success it holds the
// winning nonce.
func (s *Sealer) Seal(ctx context.Context, fields map[string]any, difficulty int) (Result, error) {
	if difficulty < 0 || difficulty > MaxDifficulty {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidDifficulty, difficulty)
	}
	target := strings.Repeat("0", difficulty)

	var nonce uint64
	for {
		if nonce%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Attempts: nonce}, fmt.Errorf("seal after %d attempts: %w", nonce, err)
			}
		}
		if s.maxAttempts > 0 && nonce >= s.maxAttempts {
			return Result{Attempts: nonce}, fmt.Errorf("%w: %d attempts at difficulty %d", ErrAttemptsExhausted, nonce, difficulty)
		}

		fields["nonce"] = nonce
		h, err := s.hash(fields)
		if err != nil {
			return Result{Attempts: nonce + 1}, fmt.Errorf("hash candidate nonce %d: %w", nonce, err)
		}
		if strings.HasPrefix(h, target) {
			return Result{Nonce: nonce, Hash: h, Attempts: nonce + 1}, nil
		}
		nonce++
	}
}

// MeetsDifficulty reports whether hash starts with difficulty '0' characters.
func MeetsDifficulty(hash string, difficulty int) bool {
	if difficulty <= 0 {
		return true
	}
	if difficulty > len(hash) {
		return false
	}
	return strings.Count(hash[:difficulty], "0") == difficulty
}
