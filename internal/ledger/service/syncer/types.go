package syncer

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		BlockCount(ctx context.Context) (uint64, error)
		BlockHash(ctx context.Context, height uint64) (string, error)
		Block(ctx context.Context, hash string) (*btcjson.GetBlockVerboseResult, error)
		Transaction(ctx context.Context, txid string) (*btcjson.TxRawResult, error)
	}
	LedgerStore interface {
		MaxContiguousBlockHeight(ctx context.Context, coin model.Coin, network model.Network, from uint64) (uint64, error)
		MissingBlockHeights(ctx context.Context, coin model.Coin, network model.Network, from, to, limit uint64) ([]uint64, error)
		MaxBlock(ctx context.Context, coin model.Coin, network model.Network) (model.Block, bool, error)
		InsertBlock(ctx context.Context, block model.Block) error
		DeleteBlocksFrom(ctx context.Context, coin model.Coin, network model.Network, height uint64) error
		IncrementAddress(ctx context.Context, coin model.Coin, network model.Network, address string, balanceDelta, receivedDelta decimal.Decimal) error
	}
	TransactionResolver interface {
		Resolve(ctx context.Context, tx btcjson.TxRawResult) ([]model.Delta, error)
	}
	Metrics interface {
		ObserveIteration(err error)
		ObserveHeights(local, remote uint64)
		ObserveProcessBlock(err error, recorded bool, started time.Time)
		ObserveSkippedTransaction()
		ObserveReorg()
		ObserveCatchUp(heights int)
	}
)

// Handles is one connection set to the node and the store. A Handles value is used by
// one goroutine at a time.
type Handles struct {
	Source   BlockSource
	Store    LedgerStore
	Resolver TransactionResolver
}
