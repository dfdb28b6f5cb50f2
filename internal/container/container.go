package container

import (
	"context"
	"fmt"
	"io"
	"os"

	"mitrasafety/storefront/internal/client"
	"mitrasafety/storefront/internal/config"
	"mitrasafety/storefront/internal/repository"
	"mitrasafety/storefront/internal/service"
	"mitrasafety/storefront/internal/state"
	"mitrasafety/storefront/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Client     client.StorefrontClient
	Products   *store.ProductStore
	Cart       *store.PersistentCart
	Repository repository.OrderRepository

	Service *service.Service

	out    io.Writer
	db     *pgxpool.Pool
	redis  *redis.Client
	sqlite *state.SQLiteCartState
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
		out:    os.Stdout,
	}

	configureLogging(cfg.Log)

	cartState, err := container.openCartState(ctx)
	if err != nil {
		container.Close()
		return nil, err
	}

	container.Cart = store.OpenPersistentCart(ctx, cartState, cfg.Cart.Pricing())
	container.Products = store.NewProductStore(cfg.Filters.MaxPrice)
	container.Client = client.NewStorefrontClient(cfg.API)

	container.Repository = repository.NewNoopOrderRepository()
	if cfg.Database.Enabled {
		db, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			container.Close()
			return nil, fmt.Errorf("failed to connect to order archive: %w", err)
		}
		container.db = db
		container.Repository = repository.NewOrderRepository(db)
		log.Info("✅ Order archive enabled")
	}

	container.Service = service.NewService(
		container.Client,
		container.Products,
		container.Cart,
		container.Repository,
	)

	return container, nil
}

func (c *Container) openCartState(ctx context.Context) (store.Persister, error) {
	cfg := c.Config.Cart

	switch cfg.Backend {
	case config.CartBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", c.Config.Redis.Host, c.Config.Redis.Port),
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")

		c.redis = rdb
		return state.NewRedisCartState(rdb, cfg.StorageKey), nil

	default:
		sqliteState, err := state.OpenSQLiteCartState(ctx, cfg.SQLitePath, cfg.StorageKey)
		if err != nil {
			return nil, err
		}
		c.sqlite = sqliteState
		return sqliteState, nil
	}
}

// SetOutput redirects command output.
func (c *Container) SetOutput(w io.Writer) {
	c.out = w
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Debug("Shutting down container...")

	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		c.redis.Close()
	}
	if c.sqlite != nil {
		c.sqlite.Close()
	}

	return nil
}

func configureLogging(cfg config.LogConfig) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("⚠️ Unknown log level %q, using info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
