package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents the deployment environment of the service.
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// IsProduction reports whether the environment corresponds to production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// ParseEnvironment falls back to Development for unknown values.
func ParseEnvironment(v string) Environment {
	switch Environment(v) {
	case Production:
		return Production
	case Testing:
		return Testing
	default:
		return Development
	}
}

const devSessionSecret = "noemie-dev-session-secret"

// Config holds every setting of the storefront, sourced from the environment.
type Config struct {
	Port   string `envconfig:"PORT" default:"3000"`
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	SessionSecret string        `envconfig:"SESSION_SECRET"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"720h"`

	Storage  StorageConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Shipping ShippingConfig
}

type StorageConfig struct {
	Driver  string        `envconfig:"STORAGE_DRIVER" default:"memory"`
	Timeout time.Duration `envconfig:"STORAGE_TIMEOUT" default:"10s"`
}

type MongoConfig struct {
	URI      string `envconfig:"MONGODB_URI"`
	Database string `envconfig:"MONGODB_DATABASE" default:"noemie"`
}

type RedisConfig struct {
	URL          string        `envconfig:"REDIS_URL"`
	TTL          time.Duration `envconfig:"REDIS_TTL" default:"0s"`
	ReadTimeout  int           `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int           `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	DialTimeout  int           `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
}

type ShippingConfig struct {
	Flat              float64 `envconfig:"SHIPPING_FLAT" default:"25"`
	FreeOver          float64 `envconfig:"SHIPPING_FREE_OVER" default:"300"`
	CheckoutThreshold bool    `envconfig:"SHIPPING_CHECKOUT_THRESHOLD" default:"false"`
}

// Environment returns the parsed APP_ENV.
func (c *Config) Environment() Environment {
	return ParseEnvironment(c.AppEnv)
}

// LoadEnv loads environment variables from a .env file, or from the file
// named by ENV_FILE.
func LoadEnv() {
	path := GetEnv("ENV_FILE", ".env")
	err := godotenv.Load(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("Error loading .env file")
	}
}

// GetEnv retrieves environment variables with a fallback
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Load reads the process environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.SessionSecret == "" {
		if cfg.Environment().IsProduction() {
			return nil, errors.New("SESSION_SECRET is required in production")
		}
		cfg.SessionSecret = devSessionSecret
	}

	switch cfg.Storage.Driver {
	case "memory":
	case "mongo":
		if cfg.Mongo.URI == "" {
			return nil, errors.New("MONGODB_URI is required for the mongo storage driver")
		}
	case "redis":
		if cfg.Redis.URL == "" {
			return nil, errors.New("REDIS_URL is required for the redis storage driver")
		}
	default:
		return nil, errors.New("unknown STORAGE_DRIVER " + cfg.Storage.Driver)
	}

	return &cfg, nil
}
