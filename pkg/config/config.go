package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	CORS   CORSConfig
	Quotes QuotesConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"INVOICING_APP_ENV" required:"true"`
	Port         string `envconfig:"INVOICING_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"INVOICING_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"INVOICING_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `envconfig:"INVOICING_SERVER_READ_HEADER_TIMEOUT" default:"5s"`
	ReadTimeout       time.Duration `envconfig:"INVOICING_SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout      time.Duration `envconfig:"INVOICING_SERVER_WRITE_TIMEOUT" default:"20s"`
	IdleTimeout       time.Duration `envconfig:"INVOICING_SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownGrace     time.Duration `envconfig:"INVOICING_SERVER_SHUTDOWN_GRACE" default:"10s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"INVOICING_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type QuotesConfig struct {
	MaxItems int `envconfig:"INVOICING_QUOTES_MAX_ITEMS" default:"100"`
}

// Validate reports every configuration problem at once rather than stopping
// at the first one.
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.App.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("%s must be a port number, got %q", EnvPort, c.App.Port))
	}
	if c.Server.ShutdownGrace <= 0 {
		errs = append(errs, fmt.Errorf("server shutdown grace must be positive, got %s", c.Server.ShutdownGrace))
	}
	if c.Quotes.MaxItems <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvQuotesMaxItems, c.Quotes.MaxItems))
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		errs = append(errs, fmt.Errorf("%s must list at least one origin", EnvCORSOrigins))
	}

	return multierr.Combine(errs...)
}
