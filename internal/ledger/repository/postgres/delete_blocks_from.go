package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
)

// DeleteBlocksFrom removes every block record at or above height.
func (r *Repository) DeleteBlocksFrom(ctx context.Context, coin model.Coin, network model.Network, height uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_blocks_from", coin, network, err, start)
	}()

	h, err := safe.Int64(height)
	if err != nil {
		return fmt.Errorf("rollback height: %w", err)
	}

	const query = `DELETE FROM ledger_blocks WHERE coin = $1 AND network = $2 AND height >= $3`

	if _, err = r.db.ExecContext(ctx, query, string(coin), string(network), h); err != nil {
		return fmt.Errorf("delete blocks from %d: %w", height, err)
	}
	return nil
}
