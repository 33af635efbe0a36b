// Package syncer keeps the address ledger in step with a node's best chain.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/workerpool"
)

// Config tunes a Syncer. Zero values take the package defaults.
type Config struct {
	Coin    model.Coin
	Network model.Network

	// Strict resolves a whole block before applying it and leaves it for retry on any failure.
	Strict bool

	ParallelThreshold uint64
	BatchLimit        uint64
	IdleInterval      time.Duration
	BackoffInterval   time.Duration
}

// Syncer drives the sync loop. Heights are processed one at a time on the coordinator
// handles, or spread over the worker handles when the gap to the node is large.
type Syncer struct {
	logger      *zap.Logger
	coin        model.Coin
	network     model.Network
	metrics     Metrics
	coordinator Handles
	workers     []Handles
	processor   *blockProcessor
	reorg       *ReorgDetector

	parallelThreshold uint64
	batchLimit        uint64
	idleInterval      time.Duration
	backoffInterval   time.Duration

	sleep clock.SleepFunc
	idle  clock.SleepFunc

	// cursor is a lower bound for the contiguous recorded height.
	cursor uint64
}

// New builds a Syncer. Parallel catch-up is enabled when at least two worker handle sets are given.
func New(
	cfg Config,
	coordinator Handles,
	workers []Handles,
	metrics Metrics,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Syncer, error) {
	if metrics == nil {
		return nil, errors.New("syncer metrics is required")
	}
	if err := validateHandles(coordinator); err != nil {
		return nil, fmt.Errorf("coordinator: %w", err)
	}
	for i, w := range workers {
		if err := validateHandles(w); err != nil {
			return nil, fmt.Errorf("worker %d: %w", i, err)
		}
	}
	logger = logger.With(
		zap.String("coin", string(cfg.Coin)),
		zap.String("network", string(cfg.Network)),
	)

	s := &Syncer{
		logger:            logger,
		coin:              cfg.Coin,
		network:           cfg.Network,
		metrics:           metrics,
		coordinator:       coordinator,
		workers:           workers,
		parallelThreshold: orDefault(cfg.ParallelThreshold, defaultParallelThreshold),
		batchLimit:        orDefault(cfg.BatchLimit, defaultBatchLimit),
		idleInterval:      orDefault(cfg.IdleInterval, defaultIdleInterval),
		backoffInterval:   orDefault(cfg.BackoffInterval, defaultBackoffInterval),
		sleep:             clock.SleepWithContext,
		idle:              clock.SignalSleeper(blockSignal),
		processor: &blockProcessor{
			coin:    cfg.Coin,
			network: cfg.Network,
			strict:  cfg.Strict,
			metrics: metrics,
			logger:  logger.Named("blockProcessor"),
			now:     time.Now,
		},
		reorg: NewReorgDetector(coordinator.Source, coordinator.Store, cfg.Coin, cfg.Network, metrics, logger),
	}
	return s, nil
}

// Run loops until ctx is canceled. A block in flight is always finished before Run returns.
func (s *Syncer) Run(ctx context.Context) error {
	s.logger.Info("syncer started",
		zap.Int("workers", len(s.workers)),
		zap.Bool("strict", s.processor.strict),
	)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := s.run(ctx)
		s.metrics.ObserveIteration(err)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.backoffInterval))
			if sleepErr := s.sleep(ctx, s.backoffInterval); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Syncer) run(ctx context.Context) error {
	remote, err := s.coordinator.Source.BlockCount(ctx)
	if err != nil {
		return fmt.Errorf("fetch remote height: %w", err)
	}
	local, err := s.coordinator.Store.MaxContiguousBlockHeight(ctx, s.coin, s.network, s.cursor)
	if err != nil {
		return fmt.Errorf("load local height: %w", err)
	}
	s.cursor = local
	s.metrics.ObserveHeights(local, remote)

	if local >= remote {
		return s.checkTip(ctx)
	}

	var recorded int
	if s.parallel() && remote-local > s.parallelThreshold {
		recorded, err = s.catchUp(ctx, local, remote)
	} else {
		recorded, err = s.processNext(ctx, local+1)
	}
	if err != nil {
		return err
	}
	if recorded == 0 {
		s.logger.Info("no block recorded; sleeping", zap.Uint64("local", local), zap.Duration("sleep", s.backoffInterval))
		return s.sleep(ctx, s.backoffInterval)
	}
	return nil
}

func (s *Syncer) checkTip(ctx context.Context) error {
	from, rolledBack, err := s.reorg.checkAndRollback(ctx)
	if err != nil {
		return fmt.Errorf("check reorg: %w", err)
	}
	if rolledBack {
		if from == 0 {
			s.cursor = 0
		} else if s.cursor >= from {
			s.cursor = from - 1
		}
		return nil
	}
	s.logger.Debug("at chain tip; sleeping", zap.Uint64("height", s.cursor), zap.Duration("sleep", s.idleInterval))
	return s.idle(ctx, s.idleInterval)
}

func (s *Syncer) processNext(ctx context.Context, height uint64) (int, error) {
	recorded, err := s.processor.Process(context.WithoutCancel(ctx), s.coordinator, height)
	if err != nil || !recorded {
		return 0, err
	}
	return 1, nil
}

// catchUp processes the unrecorded heights in (local, remote] over the worker handles.
func (s *Syncer) catchUp(ctx context.Context, local, remote uint64) (int, error) {
	heights, err := s.coordinator.Store.MissingBlockHeights(ctx, s.coin, s.network, local, remote, s.batchLimit)
	if err != nil {
		return 0, fmt.Errorf("list missing heights: %w", err)
	}
	if len(heights) == 0 {
		return 0, nil
	}

	s.metrics.ObserveCatchUp(len(heights))
	s.logger.Info("parallel catch-up",
		zap.Uint64("from", heights[0]),
		zap.Uint64("to", heights[len(heights)-1]),
		zap.Int("heights", len(heights)),
		zap.Int("workers", len(s.workers)),
	)

	var recorded atomic.Int64
	err = workerpool.Process(ctx, s.workers, heights, func(ctx context.Context, h Handles, height uint64) error {
		ok, err := s.processor.Process(context.WithoutCancel(ctx), h, height)
		if ok {
			recorded.Add(1)
		}
		return err
	}, nil)
	return int(recorded.Load()), err
}

func (s *Syncer) parallel() bool {
	return len(s.workers) > 1
}

func validateHandles(h Handles) error {
	switch {
	case h.Source == nil:
		return errors.New("block source is required")
	case h.Store == nil:
		return errors.New("ledger store is required")
	case h.Resolver == nil:
		return errors.New("transaction resolver is required")
	}
	return nil
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
