package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/dgraph-io/badger/v2/options"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// Badger stores outputs in an embedded on-disk database.
type Badger struct {
	db      *badger.DB
	coin    model.Coin
	network model.Network
	ttl     time.Duration
	metrics Metrics
}

func badgerOptions(dir string) badger.Options {
	opts := badger.DefaultOptions(dir).WithLogger(nil)

	// Outputs are small and written once; compression costs more memory than it saves.
	opts.Compression = options.None
	opts.TableLoadingMode = options.MemoryMap
	opts.ValueLogLoadingMode = options.MemoryMap
	opts.NumMemtables = 1
	return opts
}

// OpenBadger opens (or creates) a cache database in dir. ttl <= 0 keeps entries forever.
func OpenBadger(dir string, coin model.Coin, network model.Network, ttl time.Duration, metrics Metrics) (*Badger, error) {
	db, err := badger.Open(badgerOptions(dir))
	if err != nil {
		return nil, fmt.Errorf("open badger %s: %w", dir, err)
	}
	return &Badger{db: db, coin: coin, network: network, ttl: ttl, metrics: metrics}, nil
}

// Get returns the cached output, if any.
func (c *Badger) Get(_ context.Context, txid string, index uint32) (out model.Output, found bool, err error) {
	defer func() {
		c.metrics.ObserveLookup(found, err)
	}()

	var raw []byte
	err = c.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get([]byte(outputKey(c.coin, c.network, txid, index)))
		if getErr != nil {
			return getErr
		}
		raw, getErr = item.ValueCopy(nil)
		return getErr
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return model.Output{}, false, nil
	}
	if err != nil {
		return model.Output{}, false, fmt.Errorf("badger get output: %w", err)
	}
	out, err = decodeOutput(raw)
	if err != nil {
		return model.Output{}, false, err
	}
	return out, true, nil
}

// Put stores outputs in one write batch.
func (c *Badger) Put(_ context.Context, outputs []model.Output) error {
	if len(outputs) == 0 {
		return nil
	}
	wb := c.db.NewWriteBatch()
	for _, out := range outputs {
		raw, err := json.Marshal(out)
		if err != nil {
			wb.Cancel()
			return fmt.Errorf("encode output %s:%d: %w", out.TxID, out.Index, err)
		}
		entry := badger.NewEntry([]byte(outputKey(c.coin, c.network, out.TxID, out.Index)), raw)
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		if err := wb.SetEntry(entry); err != nil {
			wb.Cancel()
			return fmt.Errorf("badger store output %s:%d: %w", out.TxID, out.Index, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("badger flush outputs: %w", err)
	}
	return nil
}

// Close closes the database.
func (c *Badger) Close() error {
	return c.db.Close()
}
