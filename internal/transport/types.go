package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// LedgerReader is the read side of the Ledger Store.
type LedgerReader interface {
	Address(ctx context.Context, coin model.Coin, network model.Network, address string) (model.Address, bool, error)
	MaxBlock(ctx context.Context, coin model.Coin, network model.Network) (model.Block, bool, error)
}
