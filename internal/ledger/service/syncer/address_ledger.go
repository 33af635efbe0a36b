package syncer

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// AddressLedger applies resolved deltas to the store as atomic increments.
// There is no deduplication: applying the same delta twice counts it twice.
type AddressLedger struct {
	store   LedgerStore
	coin    model.Coin
	network model.Network
}

// NewAddressLedger binds store to coin and network.
func NewAddressLedger(store LedgerStore, coin model.Coin, network model.Network) *AddressLedger {
	return &AddressLedger{store: store, coin: coin, network: network}
}

// Apply adds delta to its address, creating the record on first sight.
func (l *AddressLedger) Apply(ctx context.Context, delta model.Delta) error {
	if delta.Address == "" {
		return errors.New("delta without address")
	}
	if delta.Amount.IsNegative() {
		return fmt.Errorf("negative delta amount %s for %s", delta.Amount, delta.Address)
	}
	if err := l.store.IncrementAddress(ctx, l.coin, l.network, delta.Address, delta.BalanceChange(), delta.ReceivedChange()); err != nil {
		return fmt.Errorf("apply %s of %s to %s: %w", delta.Direction, delta.Amount, delta.Address, err)
	}
	return nil
}
