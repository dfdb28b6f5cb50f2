package config

import (
	"errors"
	"fmt"
	"strings"

	"mitrasafety/storefront/internal/domain"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Cart     CartConfig     `mapstructure:"cart"`
	Filters  FiltersConfig  `mapstructure:"filters"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

// APIConfig holds storefront API configuration
type APIConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
}

const (
	CartBackendSQLite = "sqlite"
	CartBackendRedis  = "redis"
)

// CartConfig holds cart persistence and shipping rules
type CartConfig struct {
	Backend               string `mapstructure:"backend"`
	SQLitePath            string `mapstructure:"sqlite_path"`
	StorageKey            string `mapstructure:"storage_key"`
	FreeShippingThreshold int64  `mapstructure:"free_shipping_threshold"`
	FlatShippingFee       int64  `mapstructure:"flat_shipping_fee"`
}

func (c CartConfig) Pricing() domain.Pricing {
	return domain.Pricing{
		FreeShippingThreshold: c.FreeShippingThreshold,
		FlatShippingFee:       c.FlatShippingFee,
	}
}

// FiltersConfig holds the neutral filter bounds
type FiltersConfig struct {
	MaxPrice int64 `mapstructure:"max_price"`
}

// DatabaseConfig holds the order archive database configuration
type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from config.yaml in the working directory with
// environment variable overrides. A missing file leaves the defaults in place.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	return load(v)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.Cart.Backend {
	case CartBackendSQLite, CartBackendRedis:
	default:
		return fmt.Errorf("unknown cart backend %q", c.Cart.Backend)
	}
	if c.Cart.FreeShippingThreshold < 0 || c.Cart.FlatShippingFee < 0 {
		return fmt.Errorf("shipping amounts must not be negative")
	}
	if c.Filters.MaxPrice <= 0 {
		return fmt.Errorf("filters.max_price must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:5000")
	v.SetDefault("api.timeout", 30)
	v.SetDefault("api.max_retries", 0)
	v.SetDefault("api.max_requests_per_second", 10)

	v.SetDefault("cart.backend", CartBackendSQLite)
	v.SetDefault("cart.sqlite_path", "./data/storefront.db")
	v.SetDefault("cart.storage_key", "mitra-safety-cart")
	v.SetDefault("cart.free_shipping_threshold", domain.DefaultFreeShippingThreshold)
	v.SetDefault("cart.flat_shipping_fee", domain.DefaultFlatShippingFee)

	v.SetDefault("filters.max_price", domain.DefaultMaxPrice)

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "storefront")
	v.SetDefault("database.user", "storefront_user")
	v.SetDefault("database.password", "storefront_pass")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)

	v.SetDefault("log.level", "info")
}
