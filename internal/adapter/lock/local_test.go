package lock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func TestLocal_SerialisesSameCourse(t *testing.T) {
	locker := NewLocal()
	courseID := uuid.New()

	var inside, maxInside int32
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			unlock, err := locker.Lock(ctx, courseID)
			if err != nil {
				return err
			}
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				cur := atomic.LoadInt32(&maxInside)
				if n <= cur || atomic.CompareAndSwapInt32(&maxInside, cur, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	if maxInside != 1 {
		t.Fatalf("expected at most one holder, saw %d", maxInside)
	}
	if locker.size() != 0 {
		t.Fatalf("expected entries to be released, got %d", locker.size())
	}
}

func TestLocal_DifferentCoursesDoNotContend(t *testing.T) {
	locker := NewLocal()

	unlockA, err := locker.Lock(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	unlockB, err := locker.Lock(ctx, uuid.New())
	if err != nil {
		t.Fatalf("expected independent course to lock immediately, got %v", err)
	}
	unlockB()
}

func TestLocal_ContextCancelledWhileWaiting(t *testing.T) {
	locker := NewLocal()
	courseID := uuid.New()

	unlock, err := locker.Lock(context.Background(), courseID)
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := locker.Lock(ctx, courseID); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	unlock()
	if locker.size() != 0 {
		t.Fatalf("expected entries to be released, got %d", locker.size())
	}
}

func TestLocal_ReleaseIsIdempotent(t *testing.T) {
	locker := NewLocal()
	courseID := uuid.New()

	unlock, err := locker.Lock(context.Background(), courseID)
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock()
		}()
	}
	wg.Wait()

	next, err := locker.Lock(context.Background(), courseID)
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	next()
}
