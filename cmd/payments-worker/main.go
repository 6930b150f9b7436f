package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"addressbook/internal/amqp"
	"addressbook/internal/backend"
	"addressbook/internal/cache"
	"addressbook/internal/cli"
	apphttp "addressbook/internal/http"
	"addressbook/internal/log"
	"addressbook/internal/metrics"
	"addressbook/internal/worker"
)

const janitorInterval = 10 * time.Minute

func main() {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		log.New(log.DefaultConfig()).Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	logger, err := cli.SetupLogger(cfg, log.ComponentWorker)
	if err != nil {
		log.New(log.DefaultConfig()).Error("Invalid logging configuration", "error", err)
		os.Exit(1)
	}
	if !cfg.PublishingEnabled() {
		logger.Error("AMQP_URL is required to run the payments worker")
		os.Exit(1)
	}

	logger.Info("Starting payments-worker")

	ctx, stop := cli.GracefulShutdown(context.Background(), logger)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}
	ledger, err := backend.NewFactory(logger).CreateLedger(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize payment ledger", "error", err)
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	seen := cache.NewDeduper(cfg.DedupeCacheSize, cfg.DedupeTTL)
	m.TrackSize("dedupe_entries", "Payment event ids remembered for de-duplication.", seen.Len)
	ledgerWorker := worker.NewLedgerWorker(ledger, seen, m)

	// Rows already in the ledger must not be appended again after a restart.
	if _, err := ledgerWorker.WarmFromLedger(ctx, ledger); err != nil {
		logger.Warn("Could not warm dedupe cache from ledger", "error", err)
	}

	srv := apphttp.New(cfg.MetricsAddr, reg, logger)
	srv.AddReadinessCheck("ledger", func(ctx context.Context) error {
		_, err := ledger.ListPayments(ctx)
		return err
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return amqpClient.ConsumePaymentsMarked(gctx, ledgerWorker.HandlePaymentsMarked)
	})
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		return cache.RunJanitor(gctx, janitorInterval, seen)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Payments worker stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker shutdown complete")
}
