package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
)

// MaxContiguousBlockHeight returns the highest h such that every height in (from, h] is recorded,
// or from when from+1 is missing.
func (r *Repository) MaxContiguousBlockHeight(ctx context.Context, coin model.Coin, network model.Network, from uint64) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_contiguous_block_height", coin, network, err, start)
	}()

	f, err := safe.Int64(from)
	if err != nil {
		return 0, fmt.Errorf("contiguous from: %w", err)
	}

	const query = `
SELECT COALESCE(MAX(height), 0)
FROM (
	SELECT height, ROW_NUMBER() OVER (ORDER BY height) AS rn
	FROM ledger_blocks
	WHERE coin = $1 AND network = $2 AND height > $3
) AS data
WHERE height = $3 + rn`

	var height int64
	if err = r.db.GetContext(ctx, &height, query, string(coin), string(network), f); err != nil {
		return 0, fmt.Errorf("query max contiguous block height: %w", err)
	}
	if height < f {
		height = f
	}
	return uint64(height), nil
}
