// Package backend selects Ledger Store and previous-output cache implementations by name.
package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/cache"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/repository/memory"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/repository/postgres"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/metrics"
)

const (
	StoreClickhouse = "clickhouse"
	StorePostgres   = "postgres"
	StoreMemory     = "memory"

	CacheNone   = "none"
	CacheRedis  = "redis"
	CacheBadger = "badger"
)

// Store is the full Ledger Store contract.
type Store interface {
	MaxContiguousBlockHeight(ctx context.Context, coin model.Coin, network model.Network, from uint64) (uint64, error)
	MissingBlockHeights(ctx context.Context, coin model.Coin, network model.Network, from, to, limit uint64) ([]uint64, error)
	MaxBlock(ctx context.Context, coin model.Coin, network model.Network) (model.Block, bool, error)
	InsertBlock(ctx context.Context, block model.Block) error
	DeleteBlocksFrom(ctx context.Context, coin model.Coin, network model.Network, height uint64) error
	IncrementAddress(ctx context.Context, coin model.Coin, network model.Network, address string, balanceDelta, receivedDelta decimal.Decimal) error
	Address(ctx context.Context, coin model.Coin, network model.Network, address string) (model.Address, bool, error)
	Close() error
}

// Cache is a previous-output cache that must be closed.
type Cache = cache.Backend

type memoryStore struct {
	*memory.Store
}

func (memoryStore) Close() error { return nil }

// OpenStore connects to the store named kind. Every call to a server-backed kind opens a new
// connection; the memory kind returns shared when it is non-nil.
func OpenStore(ctx context.Context, kind, dsn string, shared *memory.Store) (Store, error) {
	switch kind {
	case StoreClickhouse:
		if dsn == "" {
			return nil, fmt.Errorf("%s store requires a dsn", kind)
		}
		repo, err := clickhouse.NewRepository(dsn, metrics.NewLedgerRepository(kind))
		if err != nil {
			return nil, err
		}
		return repo, nil
	case StorePostgres:
		if dsn == "" {
			return nil, fmt.Errorf("%s store requires a dsn", kind)
		}
		repo, err := postgres.NewRepository(ctx, dsn, metrics.NewLedgerRepository(kind))
		if err != nil {
			return nil, err
		}
		return repo, nil
	case StoreMemory:
		if shared == nil {
			shared = memory.NewStore()
		}
		return memoryStore{shared}, nil
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}

// CacheConfig selects and tunes the previous-output cache.
type CacheConfig struct {
	Kind      string
	RedisURL  string
	BadgerDir string
	TTL       time.Duration
	// WriteRPS caps background flushes per second; 0 means unlimited.
	WriteRPS  int
}

// OpenCache returns nil for the none kind. Writes to the returned cache are batched in the
// background until ctx is done or the cache is closed.
func OpenCache(ctx context.Context, cfg CacheConfig, coin model.Coin, network model.Network, logger *zap.Logger) (Cache, error) {
	switch cfg.Kind {
	case "", CacheNone:
		return nil, nil
	case CacheRedis:
		c, err := cache.NewRedis(ctx, cfg.RedisURL, coin, network, cfg.TTL, metrics.NewOutputCache(cfg.Kind))
		if err != nil {
			return nil, err
		}
		return cache.NewWriteBehind(ctx, c, cfg.WriteRPS, logger), nil
	case CacheBadger:
		if cfg.BadgerDir == "" {
			return nil, fmt.Errorf("%s cache requires a directory", cfg.Kind)
		}
		c, err := cache.OpenBadger(cfg.BadgerDir, coin, network, cfg.TTL, metrics.NewOutputCache(cfg.Kind))
		if err != nil {
			return nil, err
		}
		return cache.NewWriteBehind(ctx, c, cfg.WriteRPS, logger), nil
	default:
		return nil, fmt.Errorf("unknown cache %q", cfg.Kind)
	}
}
