package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpgo/compound-calculator/internal/cache"
	"github.com/rpgo/compound-calculator/internal/calculation"
	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/rpgo/compound-calculator/internal/logging"
	"github.com/rpgo/compound-calculator/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		Long: "Serve the projection API over HTTP. Settings come from the environment:\n" +
			"COMPOUND_ADDR, COMPOUND_REDIS_ADDR, COMPOUND_CACHE_TTL, COMPOUND_RATE_LIMIT,\n" +
			"COMPOUND_RATE_WINDOW and COMPOUND_LOG_LEVEL.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			level, _ := config.ParseLogLevel(cfg.LogLevel)
			log := logging.NewJSON(cmd.ErrOrStderr(), level)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			results := openCache(ctx, cfg, log)
			switch c := results.(type) {
			case *cache.RedisCache:
				defer c.Close()
			case *cache.MemoryCache:
				if cfg.CacheTTL > 0 {
					go c.PurgeEvery(ctx, cfg.CacheTTL)
				}
			}

			engine := calculation.NewProjectionEngine()
			engine.SetLogger(log)

			limiter := server.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
			defer limiter.Stop()

			handler := server.NewHandler(engine, results, cfg.CacheTTL, log.Slog())
			return server.Serve(ctx, cfg.Addr, server.Routes(handler, limiter), log.Slog())
		},
	}
}

// openCache uses Redis when configured and reachable, and memory otherwise.
func openCache(ctx context.Context, cfg config.ServerConfig, log *logging.SlogLogger) cache.ResultCache {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache()
	}
	rc := cache.NewRedisCache(cfg.RedisAddr)
	if err := rc.Ping(ctx); err != nil {
		log.Warnf("redis unavailable at %s, using in-memory cache: %v", cfg.RedisAddr, err)
		_ = rc.Close()
		return cache.NewMemoryCache()
	}
	log.Infof("caching results in redis at %s", cfg.RedisAddr)
	return rc
}
