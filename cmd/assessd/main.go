package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/application/usecase"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/service"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/infrastructure/config"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/infrastructure/messaging"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/infrastructure/metrics"
	pgRepo "github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/infrastructure/persistence/postgres"
	policyLoader "github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/infrastructure/policy"
	grpcPresentation "github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/presentation/grpc"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/presentation/rest"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/pkg/auth"
	pkgkafka "github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/pkg/kafka"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/pkg/observability"
	pkgpostgres "github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logger.Info("starting loan-assessment-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"policy_file", cfg.PolicyFile,
	)

	// Policy dataset: loaded once, validated, immutable for the process
	// lifetime. A structural violation here is fatal.
	dataset, err := policyLoader.LoadFile(cfg.PolicyFile)
	if err != nil {
		logger.Error("failed to load policy dataset", "error", err)
		os.Exit(1)
	}
	logger.Info("policy dataset loaded",
		"version", dataset.Version(),
		"max_composite_score", dataset.MaxCompositeScore(),
	)

	// Metrics exporter.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pkgpostgres.NewPool(dbCtx, pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	migDSN := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}.DSN()
	if migErr := pkgpostgres.RunMigrations(migDSN, "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	repo := pgRepo.NewAssessmentRepo(pool)
	producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
	defer producer.Close()
	publisher := messaging.NewKafkaEventPublisher(producer, cfg.Kafka.Topic, logger)
	engine := service.NewAssessmentEngine()
	m := metrics.New()

	// Wire use cases.
	assessUC := usecase.NewAssessApplicationUseCase(repo, publisher, engine, dataset, m)
	getUC := usecase.NewGetAssessmentUseCase(repo)

	// JWT service (validation against the gateway-issued secret).
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret"
	}
	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{
		Secret: jwtSecret,
		Issuer: os.Getenv("JWT_ISSUER"),
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewAssessmentHandler(assessUC, getUC, logger)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, func() error {
		return pkgpostgres.HealthCheck(ctx, pool)
	})
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
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

	logger.Info("loan-assessment-service stopped")
}
