package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
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
	f, err := safe.Int64(from)
	if err != nil {
		return nil, fmt.Errorf("missing from: %w", err)
	}
	t, err := safe.Int64(to)
	if err != nil {
		return nil, fmt.Errorf("missing to: %w", err)
	}
	l, err := safe.Int64(limit)
	if err != nil {
		return nil, fmt.Errorf("missing limit: %w", err)
	}

	const query = `
SELECT s.height
FROM generate_series($3::bigint + 1, $4::bigint) AS s(height)
WHERE NOT EXISTS (
	SELECT 1 FROM ledger_blocks b
	WHERE b.coin = $1 AND b.network = $2 AND b.height = s.height
)
ORDER BY s.height
LIMIT $5`

	var rows []int64
	if err = r.db.SelectContext(ctx, &rows, query, string(coin), string(network), f, t, l); err != nil {
		return nil, fmt.Errorf("query missing block heights: %w", err)
	}

	heights := make([]uint64, 0, len(rows))
	for _, h := range rows {
		heights = append(heights, uint64(h))
	}
	return heights, nil
}
