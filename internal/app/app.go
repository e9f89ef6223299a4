package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/Test-app01/sans-intern-verify/internal/config"
	"github.com/Test-app01/sans-intern-verify/internal/transport/middleware"
	"github.com/Test-app01/sans-intern-verify/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// services and serves HTTP until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	c, err := NewContainer(ctx, *cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.Warn("close resources", slog.String("error", err.Error()))
		}
	}()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.IdleTTL)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(c, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// NewHandler builds the HTTP surface over a wired container.
func NewHandler(c *Container, limiter *middleware.RateLimiter) http.Handler {
	logger := c.Log

	var cacheProbe interface {
		Ping(ctx context.Context) error
	}
	if c.Cache != nil {
		cacheProbe = c.Cache
	}

	return rest.NewRouter(rest.RouterDeps{
		Auth:    rest.NewAuthHandler(c.Auth, logger),
		Interns: rest.NewInternHandler(c.Interns, c.Renderer, c.Links, logger),
		Verify:  rest.NewVerifyHandler(c.Verification, c.Renderer, logger),
		Health:  rest.NewHealthHandler(c.Pool, cacheProbe, BuildVersion()),
		Global: middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.CORS(c.Config.CORS),
			middleware.Auth(c.Auth),
		),
		Public: limiter.Limit(),
	})
}

func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
