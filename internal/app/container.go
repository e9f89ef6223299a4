package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Test-app01/sans-intern-verify/internal/adapter/cache"
	"github.com/Test-app01/sans-intern-verify/internal/adapter/postgres"
	"github.com/Test-app01/sans-intern-verify/internal/adapter/postgres/codegen"
	internrepo "github.com/Test-app01/sans-intern-verify/internal/adapter/postgres/intern"
	"github.com/Test-app01/sans-intern-verify/internal/auth"
	"github.com/Test-app01/sans-intern-verify/internal/certificate"
	"github.com/Test-app01/sans-intern-verify/internal/config"
	"github.com/Test-app01/sans-intern-verify/internal/domain"
	authsvc "github.com/Test-app01/sans-intern-verify/internal/service/auth"
	internsvc "github.com/Test-app01/sans-intern-verify/internal/service/intern"
	"github.com/Test-app01/sans-intern-verify/internal/service/verification"
)

// Container holds the wired infrastructure and services shared by the
// server and the CLI.
type Container struct {
	Config config.Config
	Log    *slog.Logger

	Pool        *pgxpool.Pool
	RedisClient redis.UniversalClient
	Cache       *cache.VerificationCache
	Rasterizer  *certificate.BrowserRasterizer

	Renderer     *certificate.Renderer
	Links        certificate.Links
	Interns      *internsvc.Service
	Verification *verification.Service
	Auth         *authsvc.Service
}

// NewContainer connects to PostgreSQL and, when configured, Redis, then
// builds every service. Call Close when done.
func NewContainer(ctx context.Context, cfg config.Config, logger *slog.Logger) (_ *Container, err error) {
	c := &Container{Config: cfg, Log: logger}
	defer func() {
		if err != nil {
			c.Close()
		}
	}()

	c.Pool, err = postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, c.Pool, logger); err != nil {
			return nil, err
		}
	}

	// The services take interfaces; a nil *VerificationCache must not leak
	// into them as a non-nil interface.
	var (
		invalidator interface {
			Invalidate(ctx context.Context, codes ...string) error
		}
		lookupCache interface {
			Get(ctx context.Context, code string) (*domain.Intern, error)
			Set(ctx context.Context, in *domain.Intern) error
		}
	)
	if cfg.Cache.Enabled() {
		c.RedisClient, err = cache.NewRedisClient(ctx, cfg.Cache)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		c.Cache = cache.NewVerificationCache(c.RedisClient, cfg.Cache.TTL)
		invalidator, lookupCache = c.Cache, c.Cache
		logger.Info("verification cache enabled", slog.String("addr", cfg.Cache.RedisAddr))
	}

	c.Links = certificate.Links{BaseURL: cfg.Certificate.PublicBaseURL}
	c.Rasterizer = certificate.NewBrowserRasterizer(logger, cfg.Certificate.BrowserBin)
	c.Renderer = certificate.NewRenderer(logger, c.Rasterizer, certificate.Branding{
		Organization: cfg.Certificate.Organization,
		Tagline:      cfg.Certificate.Tagline,
		Signatory:    cfg.Certificate.Signatory,
		Department:   cfg.Certificate.Department,
	}, cfg.Certificate.RenderTimeout)

	interns := internrepo.New(c.Pool)
	c.Interns = internsvc.NewService(
		logger,
		interns,
		codegen.New(c.Pool),
		postgres.NewTxManager(c.Pool),
		invalidator,
		cfg.Certificate.CodePrefix,
	)
	c.Verification = verification.NewService(logger, interns, lookupCache, c.Links)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	c.Auth, err = authsvc.NewService(logger, jwtManager, cfg.Auth)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Close releases the browser, Redis and the database pool.
func (c *Container) Close() error {
	var errs []error
	if c.Rasterizer != nil {
		errs = append(errs, c.Rasterizer.Close())
	}
	if c.RedisClient != nil {
		errs = append(errs, c.RedisClient.Close())
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
	return errors.Join(errs...)
}
