package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// MaxBlock returns the block record with the highest height.
func (r *Repository) MaxBlock(ctx context.Context, coin model.Coin, network model.Network) (model.Block, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_block", coin, network, err, start)
	}()

	const query = `
SELECT height, hash, recorded_at
FROM ledger_blocks FINAL
WHERE coin = ? AND network = ?
ORDER BY height DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network))
	if err != nil {
		return model.Block{}, false, fmt.Errorf("query max block: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Block{}, false, fmt.Errorf("iterate max block: %w", err)
		}
		return model.Block{}, false, nil
	}

	block := model.Block{Coin: coin, Network: network}
	if err = rows.Scan(&block.Height, &block.Hash, &block.RecordedAt); err != nil {
		return model.Block{}, false, fmt.Errorf("scan max block: %w", err)
	}
	return block, true, nil
}
