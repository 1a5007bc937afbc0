package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/eslsoft/curriculum/internal/core"
)

// memoryStore is a goroutine-safe in-memory CourseRepository used by service tests.
type memoryStore struct {
	mu      sync.Mutex
	courses map[uuid.UUID]core.Course
	lessons map[uuid.UUID]core.Lesson

	commits    int
	lastFilter core.CourseListFilter

	commitFn    func(changes core.ChangeSet) error
	readHook    func()
	getLessonFn func(id uuid.UUID) (*core.Lesson, error)
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		courses: make(map[uuid.UUID]core.Course),
		lessons: make(map[uuid.UUID]core.Lesson),
	}
}

func (m *memoryStore) GetCourse(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	course, ok := m.courses[id]
	if !ok {
		return nil, fmt.Errorf("%w: course %s", core.ErrNotFound, id)
	}
	return &course, nil
}

func (m *memoryStore) GetLesson(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
	if m.getLessonFn != nil {
		return m.getLessonFn(id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	lesson, ok := m.lessons[id]
	if !ok {
		return nil, fmt.Errorf("%w: lesson %s", core.ErrNotFound, id)
	}
	return &lesson, nil
}

func (m *memoryStore) ListActiveLessons(ctx context.Context, courseID uuid.UUID) ([]core.Lesson, error) {
	m.mu.Lock()
	var out []core.Lesson
	for _, lesson := range m.lessons {
		if lesson.CourseID == courseID && !lesson.IsDeleted {
			out = append(out, lesson)
		}
	}
	m.mu.Unlock()
	core.SortLessons(out)
	if m.readHook != nil {
		m.readHook()
	}
	return out, nil
}

func (m *memoryStore) CountActiveLessons(ctx context.Context, courseID uuid.UUID) (int, error) {
	lessons, err := m.ListActiveLessons(ctx, courseID)
	return len(lessons), err
}

func (m *memoryStore) ListCourses(ctx context.Context, filter core.CourseListFilter) (*core.CoursePage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFilter = filter

	offset := 0
	if filter.PageToken != "" {
		n, err := strconv.Atoi(filter.PageToken)
		if err != nil || n < 0 {
			return nil, core.ErrInvalidPageToken
		}
		offset = n
	}

	var matched []core.Course
	for _, course := range m.courses {
		if course.IsDeleted {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(course.Title), strings.ToLower(filter.Query)) {
			continue
		}
		matched = append(matched, course)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	page := &core.CoursePage{TotalCount: len(matched)}
	if offset < len(matched) {
		end := min(offset+filter.PageSize, len(matched))
		page.Courses = matched[offset:end]
		if end < len(matched) {
			page.NextPageToken = strconv.Itoa(end)
		}
	}
	return page, nil
}

func (m *memoryStore) Commit(ctx context.Context, changes core.ChangeSet) error {
	if m.commitFn != nil {
		if err := m.commitFn(changes); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range changes.NewCourses {
		m.courses[c.ID] = c
	}
	for _, c := range changes.Courses {
		if _, ok := m.courses[c.ID]; !ok {
			return fmt.Errorf("%w: course %s", core.ErrNotFound, c.ID)
		}
	}
	for _, c := range changes.Courses {
		m.courses[c.ID] = c
	}
	for _, l := range changes.NewLessons {
		m.lessons[l.ID] = l
	}
	for _, l := range changes.Lessons {
		m.lessons[l.ID] = l
	}
	m.commits++
	return nil
}

func (m *memoryStore) activeOrders(courseID uuid.UUID) []int {
	lessons, _ := m.ListActiveLessons(context.Background(), courseID)
	orders := make([]int, 0, len(lessons))
	for _, l := range lessons {
		orders = append(orders, l.Order)
	}
	return orders
}

func (m *memoryStore) commitCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commits
}
