package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amanafinance/amana/internal/application/usecase"
	"github.com/amanafinance/amana/internal/domain/service"
	"github.com/amanafinance/amana/internal/infrastructure/config"
	"github.com/amanafinance/amana/internal/infrastructure/messaging"
	pgRepo "github.com/amanafinance/amana/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/amanafinance/amana/internal/presentation/grpc"
	"github.com/amanafinance/amana/internal/presentation/rest"
	pkgkafka "github.com/amanafinance/amana/pkg/kafka"
	"github.com/amanafinance/amana/pkg/observability"
	pkgpostgres "github.com/amanafinance/amana/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: "json",
	})
	slog.SetDefault(logger)

	logger.Info("starting financing-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Prometheus metrics exporter.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
		Port:        cfg.HTTPPort,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics exporter", "error", err)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	evalRepo := pgRepo.NewEvaluationRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	// Domain services.
	analyzer := service.NewRatioAnalyzer()
	recommender := service.NewUnderwritingRecommender(service.RecommenderConfig{
		HighRiskAmountCeiling: cfg.Underwriting.HighRiskAmountCeiling,
		HighRiskAmountCap:     cfg.Underwriting.HighRiskAmountCap,
	})
	distributor := service.NewProfitLossDistributor()

	// Wire use cases.
	scheduleUC := usecase.NewGenerateScheduleUseCase()
	settlementUC := usecase.NewComputeEarlySettlementUseCase()
	distributeUC := usecase.NewDistributeProfitLossUseCase(distributor)
	metricsUC := usecase.NewComputeContractMetricsUseCase()
	evaluateUC := usecase.NewEvaluateApplicationUseCase(evalRepo, publisher, analyzer, recommender)
	getEvalUC := usecase.NewGetEvaluationUseCase(evalRepo)

	// gRPC server.
	handler := grpcPresentation.NewFinancingHandler(
		scheduleUC, settlementUC, distributeUC, metricsUC, evaluateUC, getEvalUC,
		logger)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger)
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Optional stream intake: evaluate applications arriving on Kafka.
	if cfg.Kafka.ApplicationsTopic != "" {
		appConsumer := messaging.NewApplicationConsumer(
			pkgkafka.Config{
				Brokers:       cfg.Kafka.Brokers,
				ConsumerGroup: cfg.Kafka.ConsumerGroup,
			},
			cfg.Kafka.ApplicationsTopic,
			evaluateUC,
			logger,
		)
		defer appConsumer.Close()
		go func() {
			if err := appConsumer.Start(ctx); err != nil {
				logger.Error("application consumer stopped", "error", err)
			}
		}()
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("financing-service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
