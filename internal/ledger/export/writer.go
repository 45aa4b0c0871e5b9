// Package export mirrors appended ledger blocks into an external store in batches.
package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/model"
	"github.com/goodnatureofminers/yieldledger-backend/pkg/batcher"
)

var _ ledger.BlockSink = (*BlockWriter)(nil)

// ErrAlreadyExported is returned by Start when the store already holds blocks for the ledger id.
var ErrAlreadyExported = errors.New("ledger already exported")

const (
	defaultFlushSize     = 100
	defaultFlushInterval = time.Second
	defaultRPS           = 10
)

// WriterConfig tunes batching of exported blocks.
type WriterConfig struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// BlockWriter queues blocks and flushes them to the repository by size or interval.
type BlockWriter struct {
	repo     Repository
	ledgerID string
	metrics  Metrics
	logger   *zap.Logger
	batcher  *batcher.Batcher[model.Block]
}

// NewBlockWriter returns a BlockWriter exporting blocks of ledgerID. Zero WriterConfig
// fields take their defaults.
func NewBlockWriter(repo Repository, ledgerID string, cfg WriterConfig, metrics Metrics, logger *zap.Logger) (*BlockWriter, error) {
	if repo == nil {
		return nil, errors.New("export repository is required")
	}
	if metrics == nil {
		return nil, errors.New("export metrics is required")
	}
	if ledgerID == "" {
		return nil, errors.New("ledger id is required")
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.RPS <= 0 {
		cfg.RPS = defaultRPS
	}

	w := &BlockWriter{
		repo:     repo,
		ledgerID: ledgerID,
		metrics:  metrics,
		logger:   logger.With(zap.String("ledger_id", ledgerID)),
	}
	w.batcher = batcher.New(w.logger, w.flush, cfg.FlushSize, cfg.FlushInterval, cfg.RPS)
	return w, nil
}

// Start refuses to mirror into a ledger id that already has rows, then starts flushing.
func (w *BlockWriter) Start(ctx context.Context) error {
	last, err := w.repo.MaxBlockIndex(ctx, w.ledgerID)
	if err != nil {
		return fmt.Errorf("read export progress: %w", err)
	}
	if last > 0 {
		return fmt.Errorf("%w: %s holds blocks up to index %d", ErrAlreadyExported, w.ledgerID, last)
	}

	w.batcher.Start(ctx)
	w.logger.Info("block export started")
	return nil
}

// Stop flushes queued blocks and stops the writer.
func (w *BlockWriter) Stop() {
	w.batcher.Stop()
	w.logger.Info("block export stopped")
}

// WriteBlock queues block for export.
func (w *BlockWriter) WriteBlock(ctx context.Context, block model.Block) error {
	if err := w.batcher.Add(ctx, block); err != nil {
		return fmt.Errorf("queue block %d: %w", block.Index, err)
	}
	return nil
}

func (w *BlockWriter) flush(ctx context.Context, blocks []model.Block) error {
	started := time.Now()
	err := w.repo.InsertBlocks(ctx, w.ledgerID, blocks)
	w.metrics.ObserveFlush(err, len(blocks), started)
	if err != nil {
		return fmt.Errorf("insert %d blocks: %w", len(blocks), err)
	}
	return nil
}
