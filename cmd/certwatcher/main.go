// Package main runs the certificate watcher: the reconciliation engine fed by
// ledger events, with the certificate HTTP API on top.
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
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/archive"
	"github.com/lab10-coop/meth-cert-poc/internal/cert/docstore"
	"github.com/lab10-coop/meth-cert-poc/internal/cert/ledger"
	"github.com/lab10-coop/meth-cert-poc/internal/cert/service"
	"github.com/lab10-coop/meth-cert-poc/internal/metrics"
	"github.com/lab10-coop/meth-cert-poc/internal/transport"
	"github.com/lab10-coop/meth-cert-poc/pkg/safe"
)

type config struct {
	ListenAddr      string        `long:"listen-addr" env:"CERTWATCHER_LISTEN_ADDR" description:"certificate API listen address" default:":8080"`
	DocstoreURL     string        `long:"docstore-url" env:"CERTWATCHER_DOCSTORE_URL" description:"document store base URL" default:"http://localhost:8000"`
	DocstoreTimeout time.Duration `long:"docstore-timeout" env:"CERTWATCHER_DOCSTORE_TIMEOUT" description:"document store HTTP timeout" default:"30s"`
	DocstoreReadRPS int           `long:"docstore-read-rps" env:"CERTWATCHER_DOCSTORE_READ_RPS" description:"hydration read rate limit" default:"10"`
	Network         string        `long:"network" env:"CERTWATCHER_NETWORK" description:"ledger network name" default:"dev"`
	FromBlock       int64         `long:"from-block" env:"CERTWATCHER_FROM_BLOCK" description:"block to replay events from" default:"0"`
	BlockInterval   time.Duration `long:"block-interval" env:"CERTWATCHER_BLOCK_INTERVAL" description:"simulated ledger block interval" default:"5s"`
	DevMode         bool          `long:"dev-mode" env:"CERTWATCHER_DEV_MODE" description:"skip charge-id and amount preconditions"`

	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"CERTWATCHER_CLICKHOUSE_DSN" description:"archive ClickHouse DSN, empty disables archiving"`
	ArchiveFlushSize     int           `long:"archive-flush-size" env:"CERTWATCHER_ARCHIVE_FLUSH_SIZE" description:"archive batch size" default:"64"`
	ArchiveFlushInterval time.Duration `long:"archive-flush-interval" env:"CERTWATCHER_ARCHIVE_FLUSH_INTERVAL" description:"archive flush interval" default:"5s"`
	ArchiveRPS           int           `long:"archive-rps" env:"CERTWATCHER_ARCHIVE_RPS" description:"archive flush rate limit" default:"4"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("certificate watcher failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	fromBlock, err := safe.Uint64(cfg.FromBlock)
	if err != nil {
		return fmt.Errorf("invalid from-block: %w", err)
	}

	store, err := docstore.NewClient(cfg.DocstoreURL, cfg.DocstoreTimeout, cfg.DocstoreReadRPS, metrics.NewDocstoreClient())
	if err != nil {
		return fmt.Errorf("init docstore client: %w", err)
	}

	engine := service.NewEngine(logger)
	sim := ledger.NewSim(cfg.BlockInterval, logger)

	var archiver service.Archiver
	var archiveWriter *archive.Writer
	if cfg.ClickhouseDSN != "" {
		repo, err := archive.NewRepository(cfg.ClickhouseDSN, metrics.NewArchiveRepository())
		if err != nil {
			return fmt.Errorf("init archive repository: %w", err)
		}
		archiveWriter = archive.NewWriter(repo, cfg.ArchiveFlushSize, cfg.ArchiveFlushInterval, cfg.ArchiveRPS, logger)
		archiveWriter.Start(ctx)
		defer archiveWriter.Stop()
		archiver = archiveWriter
	}

	watcher, err := service.NewWatcher(engine, sim, store, metrics.NewWatcher(cfg.Network), archiver, fromBlock, logger)
	if err != nil {
		return fmt.Errorf("init watcher: %w", err)
	}
	coordinator, err := service.NewCoordinator(engine, sim, store, metrics.NewCoordinator(cfg.Network), archiver, cfg.DevMode, logger)
	if err != nil {
		return fmt.Errorf("init coordinator: %w", err)
	}

	handler := transport.NewHandler(engine, coordinator, logger)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler.Router(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return sim.Run(gctx)
	})
	group.Go(func() error {
		return watcher.Run(gctx)
	})
	group.Go(func() error {
		logger.Info("starting certificate API", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("certificate API failed: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
