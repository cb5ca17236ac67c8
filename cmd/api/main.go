package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispute-resolution-engine/config"
	"dispute-resolution-engine/internal/adapter/clock"
	httpHandler "dispute-resolution-engine/internal/adapter/http/handler"
	"dispute-resolution-engine/internal/adapter/realtime"
	"dispute-resolution-engine/internal/adapter/storage/memory"
	pgStorage "dispute-resolution-engine/internal/adapter/storage/postgres"
	redisStorage "dispute-resolution-engine/internal/adapter/storage/redis"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/internal/service"
	"dispute-resolution-engine/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("storage", cfg.Engine.Storage).
		Int("port", cfg.Server.Port).
		Msg("Starting Dispute Resolution Engine")

	ctx := context.Background()
	clk := clock.NewSystem()

	// The transaction directory is always the simulated in-memory store:
	// it stands in for the payment platform's transaction system, which
	// the engine reads but does not own.
	sim := memory.NewSimulator(
		cfg.Engine.LatencyMin,
		cfg.Engine.LatencyMax,
		cfg.Engine.FailureRate,
		cfg.Engine.Deterministic,
	)
	directory := memory.NewDirectory(sim)
	directory.Seed(memory.SampleTransactions(50, clk.Now().AddDate(0, -3, 0)))

	var (
		disputeRepo    ports.DisputeRepository
		auditRepo      ports.AuditRepository
		draftRepo      ports.DraftRepository
		healthCheckers []ports.HealthChecker
		closers        []func()
	)

	switch cfg.Engine.Storage {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		closers = append(closers, pool.Close)
		log.Info().Msg("PostgreSQL connected")

		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		closers = append(closers, func() { _ = rdb.Close() })
		log.Info().Msg("Redis connected")

		disputeRepo = pgStorage.NewDisputeRepo(pool, clk)
		auditRepo = pgStorage.NewAuditRepo(pool, clk)
		draftRepo = redisStorage.NewDraftStore(rdb, clk, cfg.Redis.DraftTTL)
		healthCheckers = []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
		}

	default:
		disputeRepo = memory.NewDisputeRepo(sim, clk)
		auditRepo = memory.NewAuditRepo(sim, clk)
		draftRepo = memory.NewDraftRepo(sim, clk)
		log.Info().Msg("Using in-memory storage")
	}

	// Realtime bus: delivery ticks until Disconnect.
	bus := realtime.NewBus(clk, cfg.Engine.EventTick, log)
	bus.Connect()

	// Business services
	retry := service.NewRetryPolicy(cfg.Engine.RetryAttempts, cfg.Engine.RetryBase, log)
	auditSvc := service.NewAuditService(auditRepo, clk, retry, log)
	disputeSvc := service.NewDisputeService(disputeRepo, directory, auditSvc, bus, retry, log)
	workflowSvc := service.NewWorkflowService(disputeRepo, directory, auditSvc, bus, clk, log)
	drafts := service.NewDraftManager(draftRepo, disputeSvc, auditSvc, clk, cfg.Engine.AutosaveDelay, log)
	searchSvc := service.NewSearchService(directory, retry, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Cfg:            cfg,
		DisputeSvc:     disputeSvc,
		WorkflowSvc:    workflowSvc,
		AuditSvc:       auditSvc,
		Drafts:         drafts,
		SearchSvc:      searchSvc,
		Directory:      directory,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Persist any draft still waiting in the debounce window.
	if _, err := drafts.Flush(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Draft flush on shutdown failed")
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	bus.Disconnect()
	for _, closeFn := range closers {
		closeFn()
	}

	log.Info().Msg("Server exited")
}
