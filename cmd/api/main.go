package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brewshop/internal/checkout"
	"brewshop/internal/config"
	"brewshop/internal/db"
	"brewshop/internal/httpserver"
	"brewshop/internal/logging"
	"brewshop/internal/orderapi"
	"brewshop/internal/payment"
	brewrepo "brewshop/internal/repository/brew"
	"brewshop/internal/repository/localstore"
	orderrepo "brewshop/internal/repository/order"
	tokenrepo "brewshop/internal/repository/token"
	brewsvc "brewshop/internal/service/brew"
	ordersvc "brewshop/internal/service/order"
	"brewshop/internal/service/session"
	"brewshop/internal/storefront"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbpool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatal("connect to db", zap.Error(err))
	}
	defer dbpool.Close()

	storage, closeStorage, err := openSnapshotStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open snapshot storage", zap.String("backend", cfg.SnapshotBackend), zap.Error(err))
	}
	defer closeStorage()

	brewService := brewsvc.New(brewrepo.NewPostgres(dbpool, logger), cfg.FileURLHost)
	sessions := session.New(tokenrepo.NewPostgres(dbpool), cfg.SessionTTL)
	registry := storefront.NewRegistry(storage, cfg.SessionIdleTimeout, logger)
	orchestrator := checkout.NewOrchestrator(
		paymentProvider(cfg, logger),
		orderBackend(cfg, dbpool, logger),
		checkout.Options{EmailTo: cfg.OrderEmailTo, EmailRequired: cfg.EmailRequired},
		logger,
	)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		BrewSvc:     brewService,
		Sessions:    sessions,
		Registry:    registry,
		Checkout:    orchestrator,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	if cfg.SessionIdleTimeout > 0 {
		go registry.Run(ctx, sweepInterval(cfg.SessionIdleTimeout))
	}
	go pruneTokens(ctx, sessions, time.Hour, logger)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}

func openSnapshotStorage(ctx context.Context, cfg config.Config, logger *zap.Logger) (localstore.Repository, func(), error) {
	switch cfg.SnapshotBackend {
	case config.SnapshotMemory:
		logger.Warn("snapshot storage is in memory; carts do not survive restarts")
		return localstore.NewMemory(), func() {}, nil
	case config.SnapshotRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
		}
		return localstore.NewRedis(client, cfg.RedisPrefix, cfg.SnapshotTTL), func() { client.Close() }, nil
	case config.SnapshotSQLite:
		repo, sqlDB, err := localstore.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { sqlDB.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
	}
}

func paymentProvider(cfg config.Config, logger *zap.Logger) checkout.PaymentProvider {
	if cfg.StripeSecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY not set; using fixed payment token", zap.String("token", cfg.PaymentFixedToken))
		return payment.Fixed{Token: cfg.PaymentFixedToken}
	}
	return payment.NewStripe(cfg.StripeSecretKey, nil, logger)
}

func orderBackend(cfg config.Config, pool *pgxpool.Pool, logger *zap.Logger) checkout.OrderAPI {
	if cfg.OrderBackend == config.OrdersStrapi {
		logger.Info("using remote order api", zap.String("url", cfg.OrderAPIURL))
		return orderapi.New(cfg.OrderAPIURL, nil, logger)
	}
	return ordersvc.NewLocal(orderrepo.NewPostgres(pool, logger), logger)
}

func pruneTokens(ctx context.Context, sessions *session.Service, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.Prune(ctx)
			if err != nil {
				logger.Warn("prune session tokens", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Info("pruned session tokens", zap.Int64("count", n))
			}
		}
	}
}

func sweepInterval(idle time.Duration) time.Duration {
	if interval := idle / 4; interval > time.Second {
		return interval
	}
	return time.Second
}
