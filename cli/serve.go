package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"invest-agent/config"
	httpLayer "invest-agent/http"
	"invest-agent/repository"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Port = port
			}
			return serve(cmd.Context(), cfg, log)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port; overrides PORT")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	cache, closeCache := openCache(ctx, cfg, log)
	defer closeCache()

	investments, comparison := newServices(cfg, cache, log)
	handler := httpLayer.NewInvestmentHandler(investments, comparison, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: httpLayer.NewRouter(handler, httpLayer.RouterConfig{
			CORSOrigins: cfg.CORSOrigins,
			Limiter:     rateLimiter,
			Log:         log,
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return fmt.Errorf("starting server: %w", err)
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("server exited")
	return nil
}

// openCache connects to Redis when configured and falls back to an
// in-memory cache when it is unset or unreachable.
func openCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		log.Info().Msg("using in-memory result cache")
		return repository.NewMemoryCache(), func() {}
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, "invest-agent:")

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := redisCache.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, using in-memory result cache")
		_ = redisCache.Close()
		return repository.NewMemoryCache(), func() {}
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("using redis result cache")
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			log.Warn().Err(err).Msg("closing redis client")
		}
	}
}
