package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
)

type blockRow struct {
	Height     int64     `db:"height"`
	Hash       string    `db:"hash"`
	RecordedAt time.Time `db:"recorded_at"`
}

// MaxBlock returns the block record with the highest height.
func (r *Repository) MaxBlock(ctx context.Context, coin model.Coin, network model.Network) (model.Block, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_block", coin, network, err, start)
	}()

	const query = `
SELECT height, hash, recorded_at
FROM ledger_blocks
WHERE coin = $1 AND network = $2
ORDER BY height DESC
LIMIT 1`

	var row blockRow
	if err = r.db.GetContext(ctx, &row, query, string(coin), string(network)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return model.Block{}, false, nil
		}
		return model.Block{}, false, fmt.Errorf("query max block: %w", err)
	}

	height, err := safe.Uint64(row.Height)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("max block height: %w", err)
	}
	return model.Block{
		Coin:       coin,
		Network:    network,
		Height:     height,
		Hash:       row.Hash,
		RecordedAt: row.RecordedAt.UTC(),
	}, true, nil
}
