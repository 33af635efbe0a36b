package cache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/chain"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/batcher"
)

const (
	writeBehindSize     = 512
	writeBehindInterval = 500 * time.Millisecond
)

// Backend is a cache that WriteBehind wraps.
type Backend interface {
	chain.OutputCache
	Close() error
}

// WriteBehind queues Put calls and writes them to the backend in batches.
// Lookups go straight to the backend, so a just-queued output reads as a miss.
// Put never blocks: outputs that do not fit in the queue are dropped.
type WriteBehind struct {
	backend Backend
	batch   *batcher.Batcher[model.Output]
	logger  *zap.Logger
}

// NewWriteBehind starts the background writer, flushing at most rps batches per second
// (rps <= 0 means unlimited). The writer stops when ctx is done or on Close, which also
// closes backend.
func NewWriteBehind(ctx context.Context, backend Backend, rps int, logger *zap.Logger) *WriteBehind {
	logger = logger.Named("outputCache")
	cfg := batcher.Config{Size: writeBehindSize, Interval: writeBehindInterval, RPS: rps}
	b := batcher.New(cfg, backend.Put, func(err error, dropped int) {
		logger.Warn("cache write failed", zap.Int("outputs", dropped), zap.Error(err))
	})
	b.Start(ctx)
	return &WriteBehind{backend: backend, batch: b, logger: logger}
}

func (w *WriteBehind) Get(ctx context.Context, txid string, index uint32) (model.Output, bool, error) {
	return w.backend.Get(ctx, txid, index)
}

func (w *WriteBehind) Put(_ context.Context, outputs []model.Output) error {
	dropped, err := w.batch.TryAdd(outputs...)
	if err != nil {
		return err
	}
	if dropped > 0 {
		w.logger.Debug("cache queue full, outputs dropped", zap.Int("outputs", dropped))
	}
	return nil
}

// Close flushes queued outputs and closes the backend.
func (w *WriteBehind) Close() error {
	w.batch.Stop()
	return w.backend.Close()
}
