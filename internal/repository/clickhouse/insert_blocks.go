package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/canonical"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/model"
)

const insertBlocksQuery = `
INSERT INTO ledger_blocks (
	ledger_id,
	block_index,
	kind,
	timestamp,
	subject_id,
	input_snapshot,
	prediction,
	ref_hash,
	actual,
	error_abs,
	prev_hash,
	nonce,
	hash
) VALUES`

// InsertBlocks stores block rows of one ledger in ClickHouse. Opaque values are stored
// in their canonical JSON form, the same bytes the block hash covers.
func (r *Repository) InsertBlocks(ctx context.Context, ledgerID string, blocks []model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		var input, prediction []byte
		if input, err = canonical.EncodeValue(block.InputSnapshot); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("encode input snapshot of block %d: %w", block.Index, err)
		}
		if prediction, err = canonical.EncodeValue(block.Prediction); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("encode prediction of block %d: %w", block.Index, err)
		}

		if err = batch.Append(
			ledgerID,
			block.Index,
			string(block.Kind),
			block.Timestamp,
			block.SubjectID,
			string(input),
			string(prediction),
			block.RefHash,
			block.Actual,
			block.ErrorAbs,
			block.PrevHash,
			block.Nonce,
			block.Hash,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block %d: %w", block.Index, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
