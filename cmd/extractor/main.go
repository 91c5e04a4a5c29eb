package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"mercado_fetcher/internal/config"
	"mercado_fetcher/internal/domain"
	"mercado_fetcher/internal/publisher"
	"mercado_fetcher/internal/scheduler"
	"mercado_fetcher/internal/service"
	"mercado_fetcher/internal/source/mercado"
	"mercado_fetcher/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	entityArg := flag.String("entity", "all", "entity to extract: solicitudes, documentos, interesados or all")
	estado := flag.String("estado", "", "filter by estado")
	provincia := flag.String("provincia", "", "filter by provincia")
	desde := flag.String("desde", "", "filter records from this date (YYYY-MM-DD)")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	filters, err := buildFilters(*estado, *provincia, *desde)
	if err != nil {
		logger.Error("invalid filters", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	solicitudStore := postgres.NewSolicitudStore(db)
	documentoStore := postgres.NewDocumentoStore(db)
	interesadoStore := postgres.NewInteresadoStore(db)
	runStateStore := postgres.NewRunStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	apiClient := mercado.New(mercado.Config{
		BaseURL:        cfg.API.BaseURL,
		PageSize:       cfg.API.PageSize,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	extractService := service.NewExtractService(
		apiClient,
		solicitudStore,
		documentoStore,
		interesadoStore,
		runStateStore,
		txManager,
		events,
		logger,
		cfg.Extract,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if cfg.Extract.Interval > 0 {
		sched := scheduler.NewScheduler(extractService, filters, cfg.Extract.Interval, logger)
		logger.Info("starting scheduled extraction", "interval", cfg.Extract.Interval)
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runOnce(ctx, extractService, *entityArg, filters, logger); err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}
}

func runOnce(ctx context.Context, svc *service.ExtractService, entityArg string, filters domain.Filters, logger *slog.Logger) error {
	if entityArg == "all" {
		_, err := svc.ExtractAll(ctx, filters)
		return err
	}

	entity, err := domain.ParseEntity(entityArg)
	if err != nil {
		return err
	}

	stats, err := svc.Extract(ctx, entity, filters)
	if err != nil {
		return err
	}

	logger.Info("run finished", "entity", stats.Entity, "persisted", stats.Persisted)
	return nil
}

func buildFilters(estado, provincia, desde string) (domain.Filters, error) {
	filters := domain.Filters{
		Estado:    estado,
		Provincia: provincia,
	}
	if desde != "" {
		t, err := time.Parse("2006-01-02", desde)
		if err != nil {
			return domain.Filters{}, err
		}
		filters.Desde = &t
	}
	return filters, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
