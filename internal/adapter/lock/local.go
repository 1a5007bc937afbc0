package lock

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/eslsoft/curriculum/internal/core"
)

// Local serialises work per course inside a single process.
type Local struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

// NewLocal constructs an in-process course locker.
func NewLocal() *Local {
	return &Local{entries: make(map[uuid.UUID]*entry)}
}

var _ core.CourseLocker = (*Local)(nil)

// Lock blocks until the course is free or ctx is done.
func (l *Local) Lock(ctx context.Context, courseID uuid.UUID) (func(), error) {
	e := l.acquireEntry(courseID)

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.releaseEntry(courseID, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			l.releaseEntry(courseID, e)
		})
	}, nil
}

func (l *Local) acquireEntry(courseID uuid.UUID) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[courseID]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.entries[courseID] = e
	}
	e.refs++
	return e
}

func (l *Local) releaseEntry(courseID uuid.UUID, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, courseID)
	}
}

// size reports the number of courses with holders or waiters.
func (l *Local) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
