package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// MissingBlockHeights returns up to limit unrecorded heights in (from, to], ascending.
func (r *Repository) MissingBlockHeights(ctx context.Context, coin model.Coin, network model.Network, from, to, limit uint64) ([]uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("missing_block_heights", coin, network, err, start)
	}()

	if limit == 0 || to <= from {
		return nil, nil
	}

	const query = `
SELECT m.number AS height
FROM numbers(?, ?) AS m
LEFT ANTI JOIN (
	SELECT height
	FROM ledger_blocks
	WHERE coin = ? AND network = ? AND height > ? AND height <= ?
) AS b ON b.height = m.number
ORDER BY height
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, from+1, to-from, string(coin), string(network), from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("query missing block heights: %w", err)
	}
	defer rows.Close()

	var heights []uint64
	for rows.Next() {
		var height uint64
		if err = rows.Scan(&height); err != nil {
			return nil, fmt.Errorf("scan missing block height: %w", err)
		}
		heights = append(heights, height)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate missing block heights: %w", err)
	}

	return heights, nil
}
