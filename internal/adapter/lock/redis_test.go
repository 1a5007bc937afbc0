package lock

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping redis lock tests")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedis_LockAndRelease(t *testing.T) {
	client := newTestRedis(t)
	locker := NewRedis(client, nil, RedisOptions{TTL: time.Second, RetryInterval: 5 * time.Millisecond})
	courseID := uuid.New()

	unlock, err := locker.Lock(context.Background(), courseID)
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := locker.Lock(ctx, courseID); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected contended lock to time out, got %v", err)
	}

	unlock()
	unlock()

	next, err := locker.Lock(context.Background(), courseID)
	if err != nil {
		t.Fatalf("Lock() after release error = %v", err)
	}
	next()
}

func TestRedis_ExpiredLeaseIsNotReleasedByPreviousHolder(t *testing.T) {
	client := newTestRedis(t)
	locker := NewRedis(client, nil, RedisOptions{TTL: 30 * time.Millisecond, RetryInterval: 5 * time.Millisecond})
	courseID := uuid.New()

	stale, err := locker.Lock(context.Background(), courseID)
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	time.Sleep(60 * time.Millisecond)

	longer := NewRedis(client, nil, RedisOptions{TTL: time.Second, RetryInterval: 5 * time.Millisecond})
	current, err := longer.Lock(context.Background(), courseID)
	if err != nil {
		t.Fatalf("Lock() after expiry error = %v", err)
	}
	defer current()

	stale()
	exists, err := client.Exists(context.Background(), keyPrefix+courseID.String()).Result()
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists != 1 {
		t.Fatal("stale holder must not delete the current lease")
	}
}
