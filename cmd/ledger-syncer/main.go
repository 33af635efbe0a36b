package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/backend"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/chain"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/node"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/repository"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/repository/memory"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/service/syncer"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/pkg/btcd/rpcclient"
)

type config struct {
	ConfigFile string `long:"config" env:"LEDGER_CONFIG" description:"INI file with option values; command-line flags take precedence"`

	Coin    model.Coin    `long:"coin" env:"LEDGER_COIN" description:"coin name" default:"DOGE"`
	Network model.Network `long:"network" env:"LEDGER_NETWORK" description:"network name" default:"mainnet"`

	RPCURL      string        `long:"rpc-url" env:"LEDGER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:22555"`
	RPCUser     string        `long:"rpc-user" env:"LEDGER_RPC_USER" description:"node RPC username"`
	RPCPassword string        `long:"rpc-password" env:"LEDGER_RPC_PASSWORD" description:"node RPC password"`
	HTTPTimeout time.Duration `long:"http-timeout" env:"LEDGER_HTTP_TIMEOUT" description:"timeout of one RPC call" default:"30s"`
	RPCRate     int           `long:"rpc-rps" env:"LEDGER_RPC_RPS" description:"RPC calls per second per connection, 0 for unlimited" default:"0"`

	Store         string `long:"store" env:"LEDGER_STORE" description:"ledger store" choice:"clickhouse" choice:"postgres" choice:"memory" default:"clickhouse"`
	StoreDSN      string `long:"store-dsn" env:"LEDGER_STORE_DSN" description:"ledger store DSN"`
	Migrate       bool   `long:"migrate" env:"LEDGER_MIGRATE" description:"apply schema migrations before syncing"`
	MigrationsDir string `long:"migrations-dir" env:"LEDGER_MIGRATIONS_DIR" description:"migrations directory, defaults to migrations/<store> of the module"`

	Cores             int           `long:"cores" env:"LEDGER_CORES" description:"parallel catch-up workers, 1 disables parallel catch-up" default:"1"`
	ParallelThreshold uint64        `long:"parallel-threshold" env:"LEDGER_PARALLEL_THRESHOLD" description:"gap above which catch-up runs in parallel" default:"10"`
	BatchLimit        uint64        `long:"batch-limit" env:"LEDGER_BATCH_LIMIT" description:"heights per catch-up batch" default:"5000"`
	IdleInterval      time.Duration `long:"idle-interval" env:"LEDGER_IDLE_INTERVAL" description:"wait at the chain tip" default:"60s"`
	BackoffInterval   time.Duration `long:"backoff-interval" env:"LEDGER_BACKOFF_INTERVAL" description:"wait after a failed iteration" default:"10s"`
	Strict            bool          `long:"strict" env:"LEDGER_STRICT" description:"apply a block only when every transaction resolved"`

	Cache          string        `long:"cache" env:"LEDGER_CACHE" description:"previous output cache" choice:"none" choice:"redis" choice:"badger" default:"none"`
	CacheRedisURL  string        `long:"cache-redis-url" env:"LEDGER_CACHE_REDIS_URL" description:"redis URL" default:"redis://127.0.0.1:6379/0"`
	CacheBadgerDir string        `long:"cache-badger-dir" env:"LEDGER_CACHE_BADGER_DIR" description:"badger directory"`
	CacheTTL       time.Duration `long:"cache-ttl" env:"LEDGER_CACHE_TTL" description:"cache entry lifetime, 0 keeps entries" default:"24h"`
	CacheWriteRPS  int           `long:"cache-write-rps" env:"LEDGER_CACHE_WRITE_RPS" description:"max cache write batches per second, 0 is unlimited" default:"20"`

	ZMQBlockAddr string `long:"zmq-block-addr" env:"LEDGER_ZMQ_BLOCK_ADDR" description:"ZMQ hashblock endpoint that wakes the syncer at the tip"`
	MetricsAddr  string `long:"metrics-addr" env:"LEDGER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	LogJSON      bool   `long:"log-json" env:"LEDGER_LOG_JSON" description:"production JSON logging"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		if !errors.As(err, &ferr) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("ledger syncer failed", zap.Error(err))
	}
	logger.Info("ledger syncer stopped")
}

// parseConfig reads --config first, then the INI file, then the command line again so flags win.
func parseConfig(args []string) (config, error) {
	pre := config{}
	preParser := flags.NewParser(&pre, flags.HelpFlag|flags.PrintErrors|flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		return config{}, err
	}

	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	if pre.ConfigFile != "" {
		if err := flags.NewIniParser(parser).ParseFile(pre.ConfigFile); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", pre.ConfigFile, err)
		}
	}
	if _, err := parser.ParseArgs(args); err != nil {
		return config{}, err
	}
	if cfg.Cores < 1 {
		return config{}, errors.New("--cores must be at least 1")
	}
	return cfg, nil
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.Migrate {
		if err := migrate(cfg, logger); err != nil {
			return err
		}
	}

	outputCache, err := backend.OpenCache(ctx, backend.CacheConfig{
		Kind:      cfg.Cache,
		RedisURL:  cfg.CacheRedisURL,
		BadgerDir: cfg.CacheBadgerDir,
		TTL:       cfg.CacheTTL,
		WriteRPS:  cfg.CacheWriteRPS,
	}, cfg.Coin, cfg.Network, logger)
	if err != nil {
		return fmt.Errorf("init output cache: %w", err)
	}
	if outputCache != nil {
		defer closeLogged(outputCache.Close, "output cache", logger)
	}

	decoder, err := node.NewScriptDecoder(cfg.Coin, cfg.Network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}
	wiring := &handleFactory{
		cfg:       cfg,
		converter: node.NewOutputConverter(decoder),
		logger:    logger,
	}
	if outputCache != nil {
		wiring.cache = outputCache
	}
	if cfg.Store == backend.StoreMemory {
		wiring.shared = memory.NewStore()
	}
	defer wiring.Close()

	coordinator, err := wiring.New(ctx)
	if err != nil {
		return fmt.Errorf("init coordinator handles: %w", err)
	}
	var workers []syncer.Handles
	if cfg.Cores > 1 {
		for i := 0; i < cfg.Cores; i++ {
			h, err := wiring.New(ctx)
			if err != nil {
				return fmt.Errorf("init worker %d handles: %w", i, err)
			}
			workers = append(workers, h)
		}
	}

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQBlockAddr, logger)
	if err != nil {
		return fmt.Errorf("init block signal: %w", err)
	}

	svc, err := syncer.New(syncer.Config{
		Coin:              cfg.Coin,
		Network:           cfg.Network,
		Strict:            cfg.Strict,
		ParallelThreshold: cfg.ParallelThreshold,
		BatchLimit:        cfg.BatchLimit,
		IdleInterval:      cfg.IdleInterval,
		BackoffInterval:   cfg.BackoffInterval,
	}, coordinator, workers, metrics.NewSyncer(cfg.Coin, cfg.Network), logger, blockSignal)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serveMetrics(gctx, cfg.MetricsAddr, logger)
	})
	g.Go(func() error {
		return svc.Run(gctx)
	})
	return g.Wait()
}

func migrate(cfg config, logger *zap.Logger) error {
	if cfg.Store == backend.StoreMemory {
		return nil
	}
	dir := cfg.MigrationsDir
	if dir == "" {
		var err error
		if dir, err = repository.ModuleMigrationsDir(cfg.Store); err != nil {
			return fmt.Errorf("locate migrations: %w", err)
		}
	}
	url, err := repository.MigrationURL(cfg.Store, cfg.StoreDSN)
	if err != nil {
		return err
	}
	changed, err := repository.MigrateUp(dir, url)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("migrations checked", zap.String("store", cfg.Store), zap.Bool("applied", changed))
	return nil
}

// handleFactory builds one independent node and store connection set per call.
type handleFactory struct {
	cfg       config
	converter *node.OutputConverter
	cache     chain.OutputCache
	shared    *memory.Store
	logger    *zap.Logger

	closers []func() error
}

func (f *handleFactory) New(ctx context.Context) (syncer.Handles, error) {
	client, err := rpcclient.Dial(f.cfg.RPCURL, f.cfg.RPCUser, f.cfg.RPCPassword)
	if err != nil {
		return syncer.Handles{}, fmt.Errorf("init rpc client: %w", err)
	}
	f.closers = append(f.closers, func() error {
		client.Shutdown()
		client.WaitForShutdown()
		return nil
	})
	gateway := rpcclient.NewObservedClient(client, metrics.NewRPCGateway(f.cfg.Coin, f.cfg.Network), f.cfg.RPCRate, f.cfg.HTTPTimeout)
	source := node.NewSource(gateway)

	store, err := backend.OpenStore(ctx, f.cfg.Store, f.cfg.StoreDSN, f.shared)
	if err != nil {
		return syncer.Handles{}, fmt.Errorf("init store: %w", err)
	}
	f.closers = append(f.closers, store.Close)

	prevOutputs := chain.NewOutputResolver(source, f.converter, f.cache, f.logger)
	return syncer.Handles{
		Source:   source,
		Store:    store,
		Resolver: chain.NewTransactionResolver(prevOutputs, f.converter, f.logger),
	}, nil
}

func (f *handleFactory) Close() {
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i](); err != nil {
			f.logger.Warn("close handle failed", zap.Error(err))
		}
	}
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()

	logger.Info("starting metrics server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

func closeLogged(closeFn func() error, what string, logger *zap.Logger) {
	if err := closeFn(); err != nil {
		logger.Warn("close failed", zap.String("resource", what), zap.Error(err))
	}
}
