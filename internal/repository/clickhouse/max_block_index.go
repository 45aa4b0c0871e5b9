package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const maxBlockIndexQuery = `
SELECT coalesce(max(block_index), toUInt64(0)) AS max_index
FROM ledger_blocks
WHERE ledger_id = ?`

// MaxBlockIndex returns the highest block index mirrored for a ledger, 0 when none is.
func (r *Repository) MaxBlockIndex(ctx context.Context, ledgerID string) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_block_index", err, start)
	}()

	rows, err := r.conn.Query(ctx, maxBlockIndexQuery, ledgerID)
	if err != nil {
		return 0, fmt.Errorf("query max block index: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var index uint64
	if !rows.Next() {
		err = errors.New("max block index not found")
		return 0, err
	}

	if err = rows.Scan(&index); err != nil {
		return 0, fmt.Errorf("scan max block index: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max block index: %w", err)
	}

	return index, nil
}
