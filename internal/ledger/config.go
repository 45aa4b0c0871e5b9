package ledger

import (
	"time"

	"github.com/google/uuid"
)

const (
	defaultValidateWorkers = 4
	// parallelValidateThreshold is the chain length from which hash recomputation fans out.
	parallelValidateThreshold = 256
)

// Config tunes a Ledger.
type Config struct {
	// Difficulty is the number of leading hex zeros required on non-genesis hashes. 0 disables mining.
	Difficulty int
	// MaxSealAttempts caps the nonce search; 0 means unbounded.
	MaxSealAttempts uint64
	// SealTimeout bounds a single nonce search; 0 means no timeout.
	SealTimeout time.Duration
	// ValidateWorkers is the number of goroutines recomputing hashes on long chains.
	ValidateWorkers int
}

type options struct {
	id   string
	now  func() time.Time
	sink BlockSink
}

// Option customizes a Ledger.
type Option func(*options)

// WithClock sets the time source used for block timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithSink hands every appended block to sink.
func WithSink(sink BlockSink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithID sets the ledger id instead of a random UUID.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

func defaultOptions() options {
	return options{
		id:  uuid.NewString(),
		now: time.Now,
	}
}
