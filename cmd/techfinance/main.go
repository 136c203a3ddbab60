package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/techfinance-lab/techfinance/internal/ai"
	"github.com/techfinance-lab/techfinance/internal/catalog"
	"github.com/techfinance-lab/techfinance/internal/core/cache"
	corecfg "github.com/techfinance-lab/techfinance/internal/core/config"
	"github.com/techfinance-lab/techfinance/internal/core/storage/postgres"
	"github.com/techfinance-lab/techfinance/internal/migrations"
	"github.com/techfinance-lab/techfinance/internal/receivables"
	"github.com/techfinance-lab/techfinance/internal/sales"
	"github.com/techfinance-lab/techfinance/internal/server"
)

func main() {
	configPath := flag.String("config", "techfinance.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"addr", fmtAddr(cfg.Server.Host, cfg.Server.Port),
		"mode", cfg.Server.Mode,
		"ai_provider", cfg.AI.Provider,
		"cache_ttl", cfg.Cache.TTL,
	)

	// 2. Initialize Storage (PostgreSQL)
	dbAdapter, err := postgres.NewAdapter(
		cfg.Database.DSN,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 2.1. Run Database Migrations
	if err := migrations.RunMigrations(dbAdapter.DB(), cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	// 3. Initialize Repository Adapters
	catalogStore := postgres.NewCatalogAdapter(dbAdapter.DB())
	salesStore, err := postgres.NewSalesAdapter(dbAdapter.DB())
	if err != nil {
		slog.Error("Failed to prepare sales statements", "error", err)
		os.Exit(1)
	}
	defer salesStore.Close()
	receivablesStore := postgres.NewReceivablesAdapter(dbAdapter.DB())

	// 4. Initialize the report cache
	reportCache := cache.New(cfg.Cache.TTLDuration())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 5. Initialize the AI client
	aiClient, err := ai.New(ctx, cfg.AI)
	if err != nil {
		slog.Error("Failed to initialize AI client", "error", err)
		os.Exit(1)
	}

	// 6. Initialize Services
	catalogSvc := catalog.NewService(catalogStore)
	salesSvc := sales.NewService(salesStore, reportCache)
	receivablesSvc := receivables.NewService(receivablesStore, aiClient)

	// 7. Initialize Server. Every business route sits behind the bearer guard;
	// only /health stays open.
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), dbAdapter.DB(), cfg.Server.Mode)
	guarded := srv.Engine.Group("/", server.BearerAuth(cfg.Auth.Token))
	catalogSvc.RegisterRoutes(guarded)
	salesSvc.RegisterRoutes(guarded)
	receivablesSvc.RegisterRoutes(guarded)

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// 8. Start Services
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return reportCache.Janitor(gctx, cfg.Cache.SweepDuration())
	})
	g.Go(func() error {
		return srv.Run(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
