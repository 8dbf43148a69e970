package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/bistro-gateway/internal/api/http"
	"github.com/spec-kit/bistro-gateway/internal/api/http/handlers"
	"github.com/spec-kit/bistro-gateway/internal/auth"
	"github.com/spec-kit/bistro-gateway/internal/config"
	"github.com/spec-kit/bistro-gateway/internal/observability"
	"github.com/spec-kit/bistro-gateway/internal/payment"
	"github.com/spec-kit/bistro-gateway/internal/persistence"
	"github.com/spec-kit/bistro-gateway/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	cartRepo := repository.NewCartRepository(pool)

	tokens := auth.NewTokenManager(cfg.Auth.AccessKey, cfg.Auth.TokenTTLMinutes)
	authMiddleware := auth.NewAuthMiddleware(tokens)
	bridge := payment.NewBridge(payment.NewStripeProvider(cfg.Payment.SecretKey))

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Tokens:         handlers.NewTokenHandler(tokens),
		Users:          handlers.NewUsersHandler(userRepo),
		Menu:           handlers.NewMenuHandler(menuRepo),
		Reviews:        handlers.NewReviewsHandler(reviewRepo),
		Carts:          handlers.NewCartsHandler(cartRepo),
		Payments:       handlers.NewPaymentsHandler(bridge),
		AuthMiddleware: authMiddleware,
		AdminGuard:     auth.RequireAdmin(userRepo),
		Policies:       httptransport.DefaultPolicies(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
