package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// DeleteBlocksFrom removes every block record at or above height.
func (r *Repository) DeleteBlocksFrom(ctx context.Context, coin model.Coin, network model.Network, height uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_blocks_from", coin, network, err, start)
	}()

	const query = `DELETE FROM ledger_blocks WHERE coin = ? AND network = ? AND height >= ?`

	if err = r.conn.Exec(ctx, query, string(coin), string(network), height); err != nil {
		return fmt.Errorf("delete blocks from %d: %w", height, err)
	}
	return nil
}
