package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/eslsoft/curriculum/internal/core"
)

const (
	keyPrefix      = "curriculum:course-lock:"
	releaseTimeout = 2 * time.Second
)

// releaseScript deletes the lock only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisOptions tunes the lease held per course.
type RedisOptions struct {
	TTL           time.Duration
	RetryInterval time.Duration
}

// Redis is a lease-based course locker shared by every process using the same Redis.
// A holder that outlives TTL loses the lease, so TTL must exceed the slowest commit.
type Redis struct {
	client redis.UniversalClient
	logger *zap.Logger
	opts   RedisOptions
}

// NewRedis constructs a Redis-backed course locker.
func NewRedis(client redis.UniversalClient, logger *zap.Logger, opts RedisOptions) *Redis {
	if opts.TTL <= 0 {
		opts.TTL = 10 * time.Second
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = 50 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{client: client, logger: logger.Named("course_lock"), opts: opts}
}

var _ core.CourseLocker = (*Redis)(nil)

// Lock polls SET NX until the lease is acquired or ctx is done.
func (r *Redis) Lock(ctx context.Context, courseID uuid.UUID) (func(), error) {
	key := keyPrefix + courseID.String()
	token := uuid.NewString()

	ticker := time.NewTicker(r.opts.RetryInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.opts.TTL).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("acquire %s: %w", key, err)
		}
		if ok {
			return r.releaseFunc(ctx, key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *Redis) releaseFunc(ctx context.Context, key, token string) func() {
	released := false
	return func() {
		if released {
			return
		}
		released = true

		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		err := releaseScript.Run(releaseCtx, r.client, []string{key}, token).Err()
		if err != nil && !errors.Is(err, redis.Nil) {
			r.logger.Warn("release course lock failed", zap.String("key", key), zap.Error(err))
		}
	}
}
