// Package ledger implements the append-only, hash-chained prediction ledger.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/accuracy"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/canonical"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/model"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/sealer"
)

// Ledger owns an in-memory chain of blocks. Mutations are serialized; readers work on
// snapshots taken under the read lock. Proof-of-work runs outside the lock.
type Ledger struct {
	id              string
	difficulty      int
	sealTimeout     time.Duration
	validateWorkers int
	sealer          *sealer.Sealer
	now             func() time.Time
	sink            BlockSink
	metrics         Metrics
	logger          *zap.Logger

	mu     sync.RWMutex
	blocks []model.Block
	byHash map[string]int
}

// NewLedger builds a ledger holding only the genesis block.
func NewLedger(cfg Config, metrics Metrics, logger *zap.Logger, opts ...Option) (*Ledger, error) {
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}
	if cfg.Difficulty < 0 || cfg.Difficulty > sealer.MaxDifficulty {
		return nil, fmt.Errorf("difficulty %d outside 0..%d", cfg.Difficulty, sealer.MaxDifficulty)
	}
	if cfg.ValidateWorkers <= 0 {
		cfg.ValidateWorkers = defaultValidateWorkers
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := &Ledger{
		id:              o.id,
		difficulty:      cfg.Difficulty,
		sealTimeout:     cfg.SealTimeout,
		validateWorkers: cfg.ValidateWorkers,
		sealer:          sealer.New(cfg.MaxSealAttempts),
		now:             o.now,
		sink:            o.sink,
		metrics:         metrics,
		logger:          logger.With(zap.String("ledger_id", o.id)),
		byHash:          make(map[string]int),
	}
	if err := l.CreateGenesis(); err != nil {
		return nil, err
	}
	return l, nil
}

// ID identifies this ledger instance.
func (l *Ledger) ID() string {
	return l.id
}

// Difficulty returns the configured proof-of-work difficulty.
func (l *Ledger) Difficulty() int {
	return l.difficulty
}

// CreateGenesis appends the genesis block to an empty chain. Genesis is never mined.
func (l *Ledger) CreateGenesis() error {
	l.mu.Lock()
	if len(l.blocks) > 0 {
		l.mu.Unlock()
		return nil
	}

	genesis := model.Block{
		Index:         1,
		Timestamp:     l.timestamp(),
		Kind:          model.KindGenesis,
		SubjectID:     model.GenesisSubject,
		InputSnapshot: map[string]any{},
		Prediction:    map[string]any{},
		PrevHash:      model.ZeroHash,
	}
	h, err := canonical.BlockHash(genesis)
	if err != nil {
		l.mu.Unlock()
		return fmt.Errorf("hash genesis block: %w", err)
	}
	genesis.Hash = h
	l.blocks = append(l.blocks, genesis)
	l.byHash[genesis.Hash] = 0
	l.mu.Unlock()

	l.metrics.SetChainLength(1)
	l.logger.Info("genesis block created", zap.String("hash", genesis.Hash))
	l.publish(context.Background(), genesis)
	return nil
}

// AppendRecord records a prediction for subjectID and returns the new block hash.
func (l *Ledger) AppendRecord(ctx context.Context, subjectID string, inputSnapshot, prediction any) (string, error) {
	input, err := canonical.Normalize(inputSnapshot)
	if err != nil {
		return "", fmt.Errorf("normalize input snapshot: %w", err)
	}
	pred, err := canonical.Normalize(prediction)
	if err != nil {
		return "", fmt.Errorf("normalize prediction: %w", err)
	}

	b, err := l.append(ctx, model.Block{
		Kind:          model.KindPrediction,
		SubjectID:     subjectID,
		InputSnapshot: input,
		Prediction:    pred,
	})
	if err != nil {
		return "", err
	}
	return b.Hash, nil
}

// BlockByHash returns a copy of the block with the given hash.
func (l *Ledger) BlockByHash(hash string) (model.Block, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.byHash[hash]
	if !ok {
		return model.Block{}, false
	}
	return l.blocks[i].Clone(), true
}

// Blocks returns a copy of the chain in append order.
func (l *Ledger) Blocks() []model.Block {
	snapshot := l.snapshot()
	out := make([]model.Block, len(snapshot))
	for i, b := range snapshot {
		out[i] = b.Clone()
	}
	return out
}

// Len returns the number of blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Accuracy computes the accuracy report over the current chain.
func (l *Ledger) Accuracy() accuracy.Report {
	return accuracy.Analyze(l.snapshot())
}

// snapshot returns the chain slice header under the read lock. Stored blocks are
// never mutated, so sharing their values with readers is safe.
func (l *Ledger) snapshot() []model.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// append links draft to the current tail, seals it and appends it. If another writer
// advanced the tail while sealing, the candidate is rebuilt on the new tail.
func (l *Ledger) append(ctx context.Context, draft model.Block) (block model.Block, err error) {
	started := time.Now()
	defer func() {
		l.metrics.ObserveAppend(draft.Kind, err, started)
	}()

	for attempt := 1; ; attempt++ {
		if err = ctx.Err(); err != nil {
			return model.Block{}, err
		}

		l.mu.RLock()
		tail := l.blocks[len(l.blocks)-1]
		l.mu.RUnlock()

		candidate := draft
		candidate.Index = tail.Index + 1
		candidate.PrevHash = tail.Hash
		candidate.Timestamp = l.timestamp()

		sealed, sealErr := l.seal(ctx, candidate)
		if sealErr != nil {
			err = sealErr
			return model.Block{}, err
		}

		l.mu.Lock()
		if l.blocks[len(l.blocks)-1].Hash != sealed.PrevHash {
			l.mu.Unlock()
			l.logger.Debug("tail advanced while sealing, retrying",
				zap.Uint64("index", sealed.Index),
				zap.Int("attempt", attempt),
			)
			continue
		}
		l.blocks = append(l.blocks, sealed)
		l.byHash[sealed.Hash] = len(l.blocks) - 1
		length := len(l.blocks)
		l.mu.Unlock()

		l.metrics.SetChainLength(length)
		l.logger.Debug("block appended",
			zap.Uint64("index", sealed.Index),
			zap.String("kind", string(sealed.Kind)),
			zap.String("hash", sealed.Hash),
			zap.Uint64("nonce", sealed.Nonce),
		)
		l.publish(ctx, sealed)
		return sealed, nil
	}
}

func (l *Ledger) seal(ctx context.Context, b model.Block) (model.Block, error) {
	fields := b.Fields()
	if l.difficulty == 0 {
		h, err := canonical.Hash(fields)
		if err != nil {
			return model.Block{}, fmt.Errorf("hash block %d: %w", b.Index, err)
		}
		b.Nonce = 0
		b.Hash = h
		return b, nil
	}

	if l.sealTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.sealTimeout)
		defer cancel()
	}

	started := time.Now()
	res, err := l.sealer.Seal(ctx, fields, l.difficulty)
	l.metrics.ObserveSeal(res.Attempts, err, started)
	if err != nil {
		return model.Block{}, fmt.Errorf("seal block %d: %w", b.Index, err)
	}
	b.Nonce = res.Nonce
	b.Hash = res.Hash
	return b, nil
}

func (l *Ledger) publish(ctx context.Context, b model.Block) {
	if l.sink == nil {
		return
	}
	err := l.sink.WriteBlock(ctx, b.Clone())
	l.metrics.ObserveSink(err)
	if err != nil {
		l.logger.Warn("block not handed to sink", zap.Uint64("index", b.Index), zap.Error(err))
	}
}

func (l *Ledger) timestamp() string {
	return l.now().UTC().Format(time.RFC3339Nano)
}
