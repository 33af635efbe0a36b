package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// InsertBlock records a processed block.
func (r *Repository) InsertBlock(ctx context.Context, block model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_block", block.Coin, block.Network, err, start)
	}()

	recordedAt := block.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = start
	}

	const query = `
INSERT INTO ledger_blocks (
	coin,
	network,
	height,
	hash,
	recorded_at
) VALUES (?, ?, ?, ?, ?)`

	if err = r.conn.Exec(ctx, query, string(block.Coin), string(block.Network), block.Height, block.Hash, recordedAt.UTC()); err != nil {
		return fmt.Errorf("insert block %d: %w", block.Height, err)
	}
	return nil
}
