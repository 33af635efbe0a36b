package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/repository"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
)

const uniqueViolation = "23505"

// InsertBlock records a processed block. A second record for the same height fails with
// repository.ErrDuplicateBlock.
func (r *Repository) InsertBlock(ctx context.Context, block model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_block", block.Coin, block.Network, err, start)
	}()

	height, err := safe.Int64(block.Height)
	if err != nil {
		return fmt.Errorf("block height: %w", err)
	}
	recordedAt := block.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = start
	}

	const query = `
INSERT INTO ledger_blocks (coin, network, height, hash, recorded_at)
VALUES ($1, $2, $3, $4, $5)`

	if _, err = r.db.ExecContext(ctx, query, string(block.Coin), string(block.Network), height, block.Hash, recordedAt.UTC()); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			err = fmt.Errorf("insert block %d: %w", block.Height, repository.ErrDuplicateBlock)
			return err
		}
		return fmt.Errorf("insert block %d: %w", block.Height, err)
	}
	return nil
}
