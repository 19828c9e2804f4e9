package app

import (
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	DataDir string `envconfig:"DATA_DIR" default:"data"`

	// AdminPassword is the environment-level admin secret; a secrets file,
	// when configured, takes precedence over it.
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"change-me"`
	SecretsFile   string `envconfig:"SECRETS_FILE" default:""`

	SessionCookie string        `envconfig:"SESSION_COOKIE" default:"shopfront_session"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"12h"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ProductsPath is the location of the products file.
func (c *Config) ProductsPath() string {
	return filepath.Join(c.DataDir, "products.json")
}

// OrdersPath is the location of the orders file.
func (c *Config) OrdersPath() string {
	return filepath.Join(c.DataDir, "orders.json")
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
