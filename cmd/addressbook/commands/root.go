package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"addressbook/internal/amqp"
	"addressbook/internal/backend"
	"addressbook/internal/cli"
	"addressbook/internal/config"
	apphttp "addressbook/internal/http"
	"addressbook/internal/log"
	"addressbook/internal/metrics"
	"addressbook/internal/model"
	"addressbook/internal/services"
)

var (
	backendFlag  string
	dataFileFlag string
	metricsAddr  string

	logger  *log.Logger
	service *services.CommandService
	cleanup []func() error
)

func Execute() error {
	root := &cobra.Command{
		Use:          "addressbook",
		Short:        "Address book that tracks tuition fees and paid months",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}

	root.PersistentFlags().StringVar(&backendFlag, "backend", "", "contact store: memory, json or sqlite (default from DATA_BACKEND)")
	root.PersistentFlags().StringVar(&dataFileFlag, "data-file", "", "JSON data file (default from DATA_FILE)")
	root.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve /health and /metrics on this address while running")

	root.AddCommand(shellCmd(), execCmd(), exportCmd())
	err := root.ExecuteContext(context.Background())
	if cerr := teardown(); cerr != nil && logger != nil {
		logger.Error("Failed to release resources", "error", cerr)
	}
	return err
}

func setup(ctx context.Context) error {
	cli.LoadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if backendFlag != "" {
		cfg.DataBackend = backendFlag
	}
	if dataFileFlag != "" {
		cfg.DataFile = dataFileFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = cli.SetupLogger(cfg, log.ComponentShell)
	if err != nil {
		return err
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return err
	}
	store, err := backend.NewFactory(logger).CreateStore(ctx, backendCfg)
	if err != nil {
		return err
	}
	if store.Cleanup != nil {
		cleanup = append(cleanup, store.Cleanup)
	}

	var m *metrics.Metrics
	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		m = metrics.New(reg)
		srv := apphttp.New(metricsAddr, reg, logger)
		serveCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() { done <- srv.Run(serveCtx) }()
		cleanup = append(cleanup, func() error {
			cancel()
			return <-done
		})
	}

	var publisher services.PaymentPublisher
	if cfg.PublishingEnabled() {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without payment events", "error", err)
		} else {
			publisher = client
			logger.Info("Initialized AMQP client", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	mdl, err := model.NewManager(nil)
	if err != nil {
		return err
	}
	service = services.NewCommandService(mdl, store.Store, publisher, m, logger)
	if err := service.Load(ctx); err != nil {
		return fmt.Errorf("%w (data backend %s)", err, cfg.DataBackend)
	}
	return nil
}

func teardown() error {
	var errs []error
	if service != nil {
		errs = append(errs, service.Close())
	}
	for i := len(cleanup) - 1; i >= 0; i-- {
		errs = append(errs, cleanup[i]())
	}
	cleanup = nil
	return errors.Join(errs...)
}
