package server

import (
	"context"
	"fmt"
	"time"

	protovalidate "buf.build/go/protovalidate"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/eslsoft/curriculum/internal/adapter/lock"
	"github.com/eslsoft/curriculum/internal/config"
	"github.com/eslsoft/curriculum/internal/core"
	"github.com/eslsoft/curriculum/internal/logging"
	"github.com/eslsoft/curriculum/internal/observability"
)

// NewConfig loads the runtime configuration for dependency injection.
func NewConfig() (config.Config, error) {
	return config.Load()
}

// NewLogger builds the process logger; cleanup flushes buffered entries.
func NewLogger(cfg config.Config) (*zap.Logger, func(), error) {
	logger, err := logging.New(cfg.LogMode)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// NewProtoValidator constructs a protovalidate Validator for request validation.
func NewProtoValidator() (protovalidate.Validator, error) {
	return protovalidate.New()
}

// NewTracerProvider builds the tracer provider used by the RPC interceptors.
func NewTracerProvider(cfg config.Config, logger *zap.Logger) (trace.TracerProvider, func(), error) {
	tp, shutdown, err := observability.NewTracerProvider(cfg.TracingEnabled)
	if err != nil {
		return nil, nil, err
	}
	return tp, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}, nil
}

// NewCourseLocker selects the per-course lock backend.
func NewCourseLocker(cfg config.Config, logger *zap.Logger) (core.CourseLocker, func(), error) {
	switch cfg.LockBackend {
	case config.LockBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:        cfg.RedisAddr,
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			DialTimeout: 5 * time.Second,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}

		locker := lock.NewRedis(client, logger, lock.RedisOptions{
			TTL:           cfg.LockTTL,
			RetryInterval: cfg.LockRetryInterval,
		})
		return locker, func() { _ = client.Close() }, nil
	default:
		return lock.NewLocal(), func() {}, nil
	}
}
