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

	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/backend"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/transport"
)

var config struct {
	Addr     string        `long:"addr" env:"LEDGER_API_ADDR" description:"HTTP listen address" default:":8001"`
	Coin     model.Coin    `long:"coin" env:"LEDGER_COIN" description:"default coin" default:"DOGE"`
	Network  model.Network `long:"network" env:"LEDGER_NETWORK" description:"default network" default:"mainnet"`
	Store    string        `long:"store" env:"LEDGER_STORE" description:"ledger store" choice:"clickhouse" choice:"postgres" default:"clickhouse"`
	StoreDSN string        `long:"store-dsn" env:"LEDGER_STORE_DSN" description:"ledger store DSN" required:"true"`
	LogJSON  bool          `long:"log-json" env:"LEDGER_LOG_JSON" description:"production JSON logging"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	if _, err := flags.Parse(&config); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	newLogger := zap.NewDevelopment
	if config.LogJSON {
		newLogger = zap.NewProduction
	}
	logger, err := newLogger()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, logger); err != nil {
		logger.Fatal("ledger api failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	store, err := backend.OpenStore(ctx, config.Store, config.StoreDSN, nil)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close store failed", zap.Error(err))
		}
	}()

	router := mux.NewRouter()
	transport.NewLedgerHandler(store, config.Coin, config.Network, logger).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(transport.WithLogging(router, logger.Named("http"))),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	})
	return g.Wait()
}
