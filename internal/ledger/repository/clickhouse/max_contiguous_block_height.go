package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// MaxContiguousBlockHeight returns the highest h such that every height in (from, h] is recorded,
// or from when from+1 is missing. from must be 0 or a height known to be contiguous.
func (r *Repository) MaxContiguousBlockHeight(ctx context.Context, coin model.Coin, network model.Network, from uint64) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_contiguous_block_height", coin, network, err, start)
	}()

	const query = `WITH data AS (
    SELECT
        height,
        row_number() OVER (ORDER BY height) AS rn
    FROM ledger_blocks FINAL
    WHERE coin = ? AND network = ? AND height > ?
    GROUP BY height
)
SELECT max(height) AS max_contiguous_height
FROM data
WHERE height = ? + rn`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network), from, from)
	if err != nil {
		return 0, fmt.Errorf("query max contiguous block height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var height uint64
	if !rows.Next() {
		return 0, fmt.Errorf("not found max contiguous block height")
	}

	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max contiguous block height: %w", err)
	}

	if height < from {
		height = from
	}
	return height, nil
}
