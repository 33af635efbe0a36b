package chain

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TransactionSource fetches and decodes a transaction by id.
	TransactionSource interface {
		Transaction(ctx context.Context, txid string) (*btcjson.TxRawResult, error)
	}
	// OutputConverter reduces decoded outputs to ledger outputs. It returns the outputs it
	// could convert together with an error describing the ones it could not.
	OutputConverter interface {
		Outputs(tx btcjson.TxRawResult) ([]model.Output, error)
	}
	// OutputCache memoizes previous outputs by (txid, index).
	OutputCache interface {
		Get(ctx context.Context, txid string, index uint32) (model.Output, bool, error)
		Put(ctx context.Context, outputs []model.Output) error
	}
	// PrevOutputResolver resolves the output an input spends.
	PrevOutputResolver interface {
		Resolve(ctx context.Context, txid string, index uint32) (model.Output, error)
	}
)
