package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/petclub-shop/internal/cart"
	"github.com/nikolayk812/petclub-shop/internal/catalog"
	"github.com/nikolayk812/petclub-shop/internal/config"
	"github.com/nikolayk812/petclub-shop/internal/dynamo"
	"github.com/nikolayk812/petclub-shop/internal/httpapi"
	"github.com/nikolayk812/petclub-shop/internal/logging"
	"github.com/nikolayk812/petclub-shop/internal/notify"
	"github.com/nikolayk812/petclub-shop/internal/orders"
	"github.com/nikolayk812/petclub-shop/internal/port"
	"github.com/nikolayk812/petclub-shop/internal/repository"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logging.New: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("petclub stopped", zap.Error(err))
	}
}

// backends are the storage adapters picked by CART_BACKEND.
type backends struct {
	storage port.CartStorage
	source  port.CatalogSource
	orders  port.OrderPlacer
	close   func()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	b, err := newBackends(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("newBackends: %w", err)
	}
	defer b.close()

	notifier, closeNotifier, err := newNotifier(cfg, logger)
	if err != nil {
		return fmt.Errorf("newNotifier: %w", err)
	}
	defer closeNotifier()

	service, err := catalog.NewService(b.source)
	if err != nil {
		return fmt.Errorf("catalog.NewService: %w", err)
	}

	fee := cfg.DeliveryFee
	server, err := httpapi.NewServer(httpapi.Dependencies{
		Catalog:     service,
		Storage:     b.storage,
		Orders:      b.orders,
		Notifier:    notifier,
		Logger:      logger,
		CartKey:     cfg.CartKey,
		Currency:    cfg.Currency,
		DeliveryFee: &fee,

		SessionIdleTimeout: cfg.SessionIdleTimeout,
	})
	if err != nil {
		return fmt.Errorf("httpapi.NewServer: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting petclub shop",
			zap.String("port", cfg.Port),
			zap.String("cart_backend", cfg.CartBackend))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}
	return nil
}

func newBackends(ctx context.Context, cfg *config.Config, logger *zap.Logger) (backends, error) {
	static, err := catalog.NewStaticSource(catalog.SeedProducts())
	if err != nil {
		return backends{}, fmt.Errorf("catalog.NewStaticSource: %w", err)
	}

	switch cfg.CartBackend {
	case config.BackendPostgres:
		return newPostgresBackends(ctx, cfg, logger)

	case config.BackendDynamoDB:
		client, err := dynamo.NewClient(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
		if err != nil {
			return backends{}, fmt.Errorf("dynamo.NewClient: %w", err)
		}

		storage, err := dynamo.NewCartStorage(client, cfg.DynamoDBTable)
		if err != nil {
			return backends{}, fmt.Errorf("dynamo.NewCartStorage: %w", err)
		}

		logger.Info("carts in dynamodb", zap.String("table", cfg.DynamoDBTable))
		return backends{
			storage: storage,
			source:  static,
			orders:  orders.NewMemoryRepository(),
			close:   func() {},
		}, nil

	default:
		return backends{
			storage: cart.NewMemoryStorage(),
			source:  static,
			orders:  orders.NewMemoryRepository(),
			close:   func() {},
		}, nil
	}
}

// newPostgresBackends expects the schema from internal/migrations to be applied.
func newPostgresBackends(ctx context.Context, cfg *config.Config, logger *zap.Logger) (backends, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return backends{}, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return backends{}, fmt.Errorf("pool.Ping: %w", err)
	}

	storage, err := repository.NewCartStorage(pool)
	if err != nil {
		pool.Close()
		return backends{}, fmt.Errorf("repository.NewCartStorage: %w", err)
	}

	products, err := repository.NewProducts(pool)
	if err != nil {
		pool.Close()
		return backends{}, fmt.Errorf("repository.NewProducts: %w", err)
	}

	// seeding upserts, so restarts keep ids and edited rows converge back to the demo catalog
	if err := products.SaveProducts(ctx, catalog.SeedProducts()); err != nil {
		pool.Close()
		return backends{}, fmt.Errorf("products.SaveProducts: %w", err)
	}

	placed, err := repository.NewOrders(pool)
	if err != nil {
		pool.Close()
		return backends{}, fmt.Errorf("repository.NewOrders: %w", err)
	}

	logger.Info("carts, catalog and orders in postgres")
	return backends{
		storage: storage,
		source:  products,
		orders:  placed,
		close:   pool.Close,
	}, nil
}

// newNotifier publishes to RabbitMQ when a URL is configured and only logs otherwise.
func newNotifier(cfg *config.Config, logger *zap.Logger) (port.Notifier, func(), error) {
	if cfg.RabbitMQURL == "" {
		return notify.NewLogNotifier(logger), func() {}, nil
	}

	pool, err := notify.Dial(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("notify.Dial: %w", err)
	}

	publisher, err := notify.NewPublisher(pool, cfg.RabbitMQQueue, logger)
	if err != nil {
		_ = pool.Close()
		return nil, nil, fmt.Errorf("notify.NewPublisher: %w", err)
	}

	closeFn := func() {
		if err := pool.Close(); err != nil {
			logger.Warn("channel pool close failed", zap.Error(err))
		}
	}
	return publisher, closeFn, nil
}
