// Package main runs the certificate document store: hash-keyed JSON documents
// plus HTML/PDF rendering of the signed certificates.
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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lab10-coop/meth-cert-poc/internal/docserver"
	"github.com/lab10-coop/meth-cert-poc/internal/metrics"
)

type config struct {
	ListenAddr      string `long:"listen-addr" env:"CERTSERVER_LISTEN_ADDR" description:"listen address" default:":8000"`
	MetricsAddr     string `long:"metrics-addr" env:"CERTSERVER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	DataDir         string `long:"data-dir" env:"CERTSERVER_DATA_DIR" description:"directory for documents and rendered PDFs" default:"generated"`
	TemplateFile    string `long:"template-file" env:"CERTSERVER_TEMPLATE_FILE" description:"certificate HTML template, empty uses the built-in one"`
	ExplorerBaseURL string `long:"explorer-base-url" env:"CERTSERVER_EXPLORER_BASE_URL" description:"block explorer base URL for transaction links" default:"https://rinkeby.etherscan.io"`
	PDFBinary       string `long:"pdf-binary" env:"CERTSERVER_PDF_BINARY" description:"wkhtmltopdf binary" default:"wkhtmltopdf"`
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
		logger.Fatal("certificate server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	store, err := docserver.NewStore(cfg.DataDir, logger)
	if err != nil {
		return fmt.Errorf("init document store: %w", err)
	}
	renderer, err := docserver.NewRenderer(cfg.TemplateFile, cfg.ExplorerBaseURL)
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	server := docserver.NewServer(store, renderer, docserver.NewWKHTMLToPDF(cfg.PDFBinary), metrics.NewRenderer(), logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.Router(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return server.Run(gctx)
	})
	group.Go(func() error {
		logger.Info("starting document store server", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("document store server failed: %w", err)
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

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
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
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
