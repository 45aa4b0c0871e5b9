package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/canonical"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/model"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/sealer"
	"github.com/goodnatureofminers/yieldledger-backend/pkg/workerpool"
)

// IsChainValid reports whether Validate finds no violation. The check runs to completion
// even if ctx is canceled, so false always means an integrity violation.
func (l *Ledger) IsChainValid(ctx context.Context) bool {
	return l.Validate(context.WithoutCancel(ctx)) == nil
}

// Validate checks the genesis block, index continuity, prev-hash linkage, the
// difficulty target and every stored hash against its recomputed value. Violations
// wrap ErrChainInvalid.
func (l *Ledger) Validate(ctx context.Context) error {
	started := time.Now()
	err := l.validate(ctx, l.snapshot())
	l.metrics.ObserveValidate(err == nil, started)
	return err
}

func (l *Ledger) validate(ctx context.Context, blocks []model.Block) error {
	if len(blocks) == 0 {
		return fmt.Errorf("%w: empty chain", ErrChainInvalid)
	}
	if g := blocks[0]; g.Index != 1 || g.PrevHash != model.ZeroHash || g.Kind != model.KindGenesis {
		return chainError(g.Index, "malformed genesis block")
	}

	for i := 1; i < len(blocks); i++ {
		cur, prev := blocks[i], blocks[i-1]
		if cur.Index != prev.Index+1 {
			return chainError(cur.Index, fmt.Sprintf("index does not follow %d", prev.Index))
		}
		if cur.PrevHash != prev.Hash {
			return chainError(cur.Index, "prev_hash does not match previous block hash")
		}
		if l.difficulty > 0 && !sealer.MeetsDifficulty(cur.Hash, l.difficulty) {
			return chainError(cur.Index, fmt.Sprintf("hash misses difficulty %d", l.difficulty))
		}
	}

	positions := make([]int, len(blocks))
	for i := range positions {
		positions[i] = i
	}
	workers := 1
	if len(blocks) >= parallelValidateThreshold {
		workers = l.validateWorkers
	}
	return workerpool.Process(ctx, workers, positions, func(_ context.Context, i int) error {
		b := blocks[i]
		h, err := canonical.BlockHash(b)
		if err != nil {
			return chainError(b.Index, fmt.Sprintf("rehash: %v", err))
		}
		if h != b.Hash {
			return chainError(b.Index, "stored hash does not match content")
		}
		return nil
	})
}

func chainError(index uint64, reason string) error {
	return fmt.Errorf("%w: block %d: %s", ErrChainInvalid, index, reason)
}
