package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Supported values for DATABASE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported values for LOCK_BACKEND.
const (
	LockBackendLocal = "local"
	LockBackendRedis = "redis"
)

// Config captures the runtime configuration for the service.
type Config struct {
	HTTPAddress     string        `envconfig:"HTTP_ADDRESS" default:":8080" validate:"required"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	DatabaseDriver string `envconfig:"DATABASE_DRIVER" default:"postgres" validate:"oneof=postgres sqlite"`
	DatabaseURL    string `envconfig:"DATABASE_URL" required:"true" validate:"required"`

	LogMode string `envconfig:"LOG_MODE" default:"production"`

	LockBackend       string        `envconfig:"LOCK_BACKEND" default:"local" validate:"oneof=local redis"`
	LockTTL           time.Duration `envconfig:"LOCK_TTL" default:"10s" validate:"gt=0"`
	LockRetryInterval time.Duration `envconfig:"LOCK_RETRY_INTERVAL" default:"50ms" validate:"gt=0"`
	RedisAddr         string        `envconfig:"REDIS_ADDR" validate:"required_if=LockBackend redis"`
	RedisPassword     string        `envconfig:"REDIS_PASSWORD"`
	RedisDB           int           `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	AuthJWTSecret      string   `envconfig:"AUTH_JWT_SECRET"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	TracingEnabled     bool     `envconfig:"TRACING_ENABLED" default:"false"`
}

var validate = newValidator()

// newValidator reports field errors under their environment variable names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("envconfig")
	})
	return v
}

// Load reads configuration from the environment with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration against its validate tags.
func (c Config) Validate() error {
	err := validate.Struct(c)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must be provided", fe.Field())
	case "required_if":
		return fmt.Sprintf("%s must be provided when %s", fe.Field(), strings.Replace(fe.Param(), " ", " is ", 1))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be positive", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s check", fe.Field(), fe.Tag())
	}
}
