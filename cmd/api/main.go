package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payoff-grid/internal/api"
	"payoff-grid/internal/config"
	"payoff-grid/internal/data"
	"payoff-grid/internal/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.MustNew(cfg.Log.Level, !cfg.Server.Production())
	defer func() { _ = logger.Sync() }()

	if err := serve(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func serve(cfg *config.Config, logger *zap.Logger) error {
	if cfg.Server.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ttl, err := cfg.Server.CacheDuration()
	if err != nil {
		return err
	}
	cache := data.NewGridCache(ttl, cfg.Server.CacheMaxEntries)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           api.NewRouter(cfg.Grid.Size, cfg.Grid.MaxSize, cache, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting API server",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Server.Env),
			zap.Duration("cache_ttl", ttl),
			zap.Int("max_grid_size", cfg.Grid.MaxSize),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	if cache != nil {
		g.Go(func() error {
			cache.RunCleanup(ctx, ttl)
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
