package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/redis/go-redis/v9"
)

// Redis stores outputs as JSON values with a TTL.
type Redis struct {
	rdb     *redis.Client
	coin    model.Coin
	network model.Network
	ttl     time.Duration
	metrics Metrics
}

// NewRedis connects to url and pings it. ttl <= 0 keeps entries forever.
func NewRedis(ctx context.Context, url string, coin model.Coin, network model.Network, ttl time.Duration, metrics Metrics) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	if ttl < 0 {
		ttl = 0
	}
	return &Redis{rdb: rdb, coin: coin, network: network, ttl: ttl, metrics: metrics}, nil
}

// Get returns the cached output, if any.
func (c *Redis) Get(ctx context.Context, txid string, index uint32) (out model.Output, found bool, err error) {
	defer func() {
		c.metrics.ObserveLookup(found, err)
	}()

	raw, err := c.rdb.Get(ctx, outputKey(c.coin, c.network, txid, index)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Output{}, false, nil
	}
	if err != nil {
		return model.Output{}, false, fmt.Errorf("redis get output: %w", err)
	}
	out, err = decodeOutput(raw)
	if err != nil {
		return model.Output{}, false, err
	}
	return out, true, nil
}

// Put stores outputs in one pipeline.
func (c *Redis) Put(ctx context.Context, outputs []model.Output) error {
	if len(outputs) == 0 {
		return nil
	}
	pipe := c.rdb.Pipeline()
	for _, out := range outputs {
		raw, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("encode output %s:%d: %w", out.TxID, out.Index, err)
		}
		pipe.Set(ctx, outputKey(c.coin, c.network, out.TxID, out.Index), raw, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis store outputs: %w", err)
	}
	return nil
}

// Close closes the client.
func (c *Redis) Close() error {
	return c.rdb.Close()
}
