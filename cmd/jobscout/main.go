package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/nidhogg/jobscout/internal/api"
	"github.com/nidhogg/jobscout/internal/catalog"
	"github.com/nidhogg/jobscout/internal/chat"
	"github.com/nidhogg/jobscout/internal/config"
	"github.com/nidhogg/jobscout/internal/gateway"
	"github.com/nidhogg/jobscout/internal/metrics"
	pgstore "github.com/nidhogg/jobscout/internal/store"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	logger.Info("Starting Jobscout...")

	// Load configuration
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/jobscout.json"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", cfgPath), zap.Error(err))
	}
	logger.Info("Config loaded", zap.String("path", cfgPath))

	// Initialize PostgreSQL store
	var store *pgstore.Store
	if cfg.Database.Postgres.DSN != "" {
		st, pgErr := pgstore.New(cfg.Database.Postgres.DSN, logger)
		if pgErr != nil {
			logger.Warn("PostgreSQL unavailable, using local catalog", zap.Error(pgErr))
		} else {
			if mErr := st.Migrate(context.Background(), "migrations"); mErr != nil {
				logger.Fatal("migration failed", zap.Error(mErr))
			}
			store = st
		}
	}

	// Resolve the role catalog: database, then file, then builtin
	cat := resolveCatalog(cfg, store, logger)
	logger.Info("Catalog ready", zap.Int("roles", cat.Len()))

	// Metrics
	var m *metrics.Manager
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Session registry
	registry := chat.NewRegistry(cat, m, logger)

	// Gateways
	gw := gateway.NewManager(logger)

	wsAdapter := gateway.NewWebSocketAdapter(registry, m, logger)
	gw.Register(wsAdapter)

	if cfg.Gateway.Slack.Enabled && cfg.Gateway.Slack.BotToken != "" {
		gw.Register(gateway.NewSlackAdapter(
			cfg.Gateway.Slack.BotToken, cfg.Gateway.Slack.AppToken, registry, m, logger))
	}
	if cfg.Gateway.Discord.Enabled && cfg.Gateway.Discord.BotToken != "" {
		gw.Register(gateway.NewDiscordAdapter(
			cfg.Gateway.Discord.BotToken, registry, m, logger))
	}

	if err := gw.ConnectAll(context.Background()); err != nil {
		logger.Warn("some gateway adapters failed to connect", zap.Error(err))
	}

	// Build HTTP handler
	handler := api.NewHandler(registry, cat, gw, wsAdapter, m, logger)

	// Start server
	port := cfg.Server.Port
	if port == 0 {
		port = 3001
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("Jobscout listening", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down Jobscout...")
	srv.Shutdown(context.Background())
	gw.Close()
	if store != nil {
		store.Close()
	}
}

// resolveCatalog picks the catalog source: a populated roles table wins,
// then a configured catalog file, then the builtin data. An empty roles
// table is seeded from whichever local source applies.
func resolveCatalog(cfg *config.Config, store *pgstore.Store, logger *zap.Logger) *catalog.Catalog {
	local := catalog.Builtin()
	if cfg.Catalog.Path != "" {
		c, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			logger.Fatal("failed to load catalog file",
				zap.String("path", cfg.Catalog.Path), zap.Error(err))
		}
		local = c
	}

	if store == nil {
		return local
	}

	ctx := context.Background()
	n, err := store.CountRoles(ctx)
	if err != nil {
		logger.Warn("catalog count failed, using local catalog", zap.Error(err))
		return local
	}
	if n == 0 {
		if err := store.SeedCatalog(ctx, local); err != nil {
			logger.Warn("catalog seed failed, using local catalog", zap.Error(err))
			return local
		}
	}

	c, err := store.LoadCatalog(ctx)
	if err != nil {
		logger.Warn("catalog load failed, using local catalog", zap.Error(err))
		return local
	}
	return c
}
