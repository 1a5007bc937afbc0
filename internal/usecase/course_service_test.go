package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/eslsoft/curriculum/internal/adapter/lock"
	"github.com/eslsoft/curriculum/internal/core"
)

var fixedNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

type stubLocker struct {
	lockFn func(ctx context.Context, courseID uuid.UUID) (func(), error)
}

func (s *stubLocker) Lock(ctx context.Context, courseID uuid.UUID) (func(), error) {
	return s.lockFn(ctx, courseID)
}

func newTestService(t *testing.T) (*CourseService, *memoryStore) {
	t.Helper()
	store := newMemoryStore()
	service := NewCourseService(store, lock.NewLocal(), nil)
	clock := fixedNow
	service.WithClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})
	return service, store
}

// seedCourse creates a course whose lessons are titled by the given names, in order.
func seedCourse(t *testing.T, service *CourseService, titles ...string) (core.Course, []core.Lesson) {
	t.Helper()
	ctx := context.Background()
	result, err := service.CreateCourseWithFirstLesson(ctx, core.CreateCourseParams{Title: "Course", FirstLessonTitle: titles[0]})
	if err != nil {
		t.Fatalf("CreateCourseWithFirstLesson() error = %v", err)
	}
	lessons := []core.Lesson{result.FirstLesson}
	for _, title := range titles[1:] {
		lesson, err := service.CreateLesson(ctx, core.CreateLessonParams{CourseID: result.Course.ID, Title: title})
		if err != nil {
			t.Fatalf("CreateLesson() error = %v", err)
		}
		lessons = append(lessons, *lesson)
	}
	return result.Course, lessons
}

func titlesOf(lessons []core.Lesson) string {
	names := make([]string, 0, len(lessons))
	for _, l := range lessons {
		names = append(names, l.Title)
	}
	return strings.Join(names, ",")
}

func assertDense(t *testing.T, store *memoryStore, courseID uuid.UUID) {
	t.Helper()
	for i, order := range store.activeOrders(courseID) {
		if order != i+1 {
			t.Fatalf("active orders are not dense: %v", store.activeOrders(courseID))
		}
	}
}

func TestCourseService_CreateCourseWithFirstLesson(t *testing.T) {
	service, store := newTestService(t)

	result, err := service.CreateCourseWithFirstLesson(context.Background(), core.CreateCourseParams{
		Title:            "  Go Basics ",
		FirstLessonTitle: "Intro",
	})
	if err != nil {
		t.Fatalf("CreateCourseWithFirstLesson() error = %v", err)
	}
	if result.Course.Status != core.CourseStatusDraft {
		t.Fatalf("expected draft status, got %v", result.Course.Status)
	}
	if result.Course.Title != "Go Basics" {
		t.Fatalf("expected trimmed title, got %q", result.Course.Title)
	}
	if result.FirstLesson.Order != 1 {
		t.Fatalf("expected first lesson order 1, got %d", result.FirstLesson.Order)
	}
	if result.FirstLesson.CourseID != result.Course.ID {
		t.Fatalf("expected lesson to belong to course %v, got %v", result.Course.ID, result.FirstLesson.CourseID)
	}
	if !result.Course.CreatedAt.Equal(result.FirstLesson.CreatedAt) {
		t.Fatal("expected course and first lesson to share the creation time")
	}
	if store.commitCount() != 1 {
		t.Fatalf("expected a single commit, got %d", store.commitCount())
	}
}

func TestCourseService_CreateCourseWithFirstLesson_Validation(t *testing.T) {
	service, store := newTestService(t)

	cases := []core.CreateCourseParams{
		{Title: " ", FirstLessonTitle: "Intro"},
		{Title: "Course", FirstLessonTitle: ""},
	}
	for _, params := range cases {
		if _, err := service.CreateCourseWithFirstLesson(context.Background(), params); !errors.Is(err, core.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", params, err)
		}
	}
	if store.commitCount() != 0 {
		t.Fatalf("expected no commits, got %d", store.commitCount())
	}
}

func TestCourseService_CreateLessonAppends(t *testing.T) {
	service, store := newTestService(t)
	course, lessons := seedCourse(t, service, "A", "B", "C")

	for i, l := range lessons {
		if l.Order != i+1 {
			t.Fatalf("lesson %s got order %d, want %d", l.Title, l.Order, i+1)
		}
	}
	assertDense(t, store, course.ID)
}

func TestCourseService_CreateLessonOnDeletedCourse(t *testing.T) {
	service, _ := newTestService(t)
	course, _ := seedCourse(t, service, "A")

	if _, err := service.DeleteCourse(context.Background(), course.ID); err != nil {
		t.Fatalf("DeleteCourse() error = %v", err)
	}
	_, err := service.CreateLesson(context.Background(), core.CreateLessonParams{CourseID: course.ID, Title: "B"})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = service.CreateLesson(context.Background(), core.CreateLessonParams{CourseID: uuid.New(), Title: "B"})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown course, got %v", err)
	}
}

func TestCourseService_LessonWritesOnDeletedCourse(t *testing.T) {
	service, store := newTestService(t)
	course, lessons := seedCourse(t, service, "A", "B")

	if _, err := service.DeleteCourse(context.Background(), course.ID); err != nil {
		t.Fatalf("DeleteCourse() error = %v", err)
	}
	commits := store.commitCount()

	for name, call := range map[string]func() error{
		"update": func() error {
			_, err := service.UpdateLesson(context.Background(), core.UpdateLessonParams{ID: lessons[0].ID, Title: "X", Order: 1})
			return err
		},
		"reorder": func() error {
			_, err := service.ReorderLesson(context.Background(), lessons[0].ID, core.DirectionDown)
			return err
		},
		"delete": func() error {
			_, err := service.DeleteLesson(context.Background(), lessons[1].ID)
			return err
		},
	} {
		if err := call(); !errors.Is(err, core.ErrNotFound) {
			t.Fatalf("%s: expected ErrNotFound, got %v", name, err)
		}
	}
	if store.commitCount() != commits {
		t.Fatal("expected no commits for lessons of a deleted course")
	}

	if _, err := service.GetLesson(context.Background(), lessons[0].ID); err != nil {
		t.Fatalf("GetLesson() error = %v", err)
	}
	remaining, err := service.ListLessons(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("ListLessons() error = %v", err)
	}
	if titlesOf(remaining) != "A,B" {
		t.Fatalf("expected lessons untouched, got %s", titlesOf(remaining))
	}
}

func TestCourseService_DeleteMiddleLessonRenumbers(t *testing.T) {
	service, store := newTestService(t)
	course, lessons := seedCourse(t, service, "A", "B", "C")

	deleted, err := service.DeleteLesson(context.Background(), lessons[1].ID)
	if err != nil {
		t.Fatalf("DeleteLesson() error = %v", err)
	}
	if !deleted.IsDeleted || deleted.Order != 2 {
		t.Fatalf("expected tombstone with frozen order 2, got %+v", deleted)
	}

	remaining, err := service.ListLessons(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("ListLessons() error = %v", err)
	}
	if got := titlesOf(remaining); got != "A,C" {
		t.Fatalf("expected A,C, got %s", got)
	}
	if remaining[1].Order != 2 {
		t.Fatalf("expected C to move to order 2, got %d", remaining[1].Order)
	}

	tombstone, err := store.GetLesson(context.Background(), lessons[1].ID)
	if err != nil {
		t.Fatalf("GetLesson() error = %v", err)
	}
	if tombstone.Order != 2 || !tombstone.IsDeleted {
		t.Fatalf("expected stored tombstone at order 2, got %+v", tombstone)
	}

	if _, err := service.GetLesson(context.Background(), lessons[1].ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for tombstoned lesson, got %v", err)
	}
	if _, err := service.DeleteLesson(context.Background(), lessons[1].ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCourseService_DeleteLastLessonKeepsPublishedStatus(t *testing.T) {
	service, store := newTestService(t)
	course, lessons := seedCourse(t, service, "A")

	if _, err := service.PublishCourse(context.Background(), course.ID); err != nil {
		t.Fatalf("PublishCourse() error = %v", err)
	}
	if _, err := service.DeleteLesson(context.Background(), lessons[0].ID); err != nil {
		t.Fatalf("DeleteLesson() error = %v", err)
	}

	got, err := service.GetCourse(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("GetCourse() error = %v", err)
	}
	if got.Status != core.CourseStatusPublished {
		t.Fatalf("expected course to stay published, got %v", got.Status)
	}
	if orders := store.activeOrders(course.ID); len(orders) != 0 {
		t.Fatalf("expected no active lessons, got %v", orders)
	}
}

func TestCourseService_PublishGate(t *testing.T) {
	service, store := newTestService(t)
	course, lessons := seedCourse(t, service, "A")

	if _, err := service.DeleteLesson(context.Background(), lessons[0].ID); err != nil {
		t.Fatalf("DeleteLesson() error = %v", err)
	}
	before := store.commitCount()

	_, err := service.PublishCourse(context.Background(), course.ID)
	if !errors.Is(err, core.ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
	if !strings.Contains(err.Error(), core.ReasonNoActiveLessons) {
		t.Fatalf("expected reason %q in %q", core.ReasonNoActiveLessons, err.Error())
	}
	if store.commitCount() != before {
		t.Fatal("declined publish must not commit")
	}

	if _, err := service.CreateLesson(context.Background(), core.CreateLessonParams{CourseID: course.ID, Title: "B"}); err != nil {
		t.Fatalf("CreateLesson() error = %v", err)
	}
	published, err := service.PublishCourse(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("PublishCourse() error = %v", err)
	}
	if published.Status != core.CourseStatusPublished {
		t.Fatalf("expected published status, got %v", published.Status)
	}

	draft, err := service.UnpublishCourse(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("UnpublishCourse() error = %v", err)
	}
	if draft.Status != core.CourseStatusDraft {
		t.Fatalf("expected draft status, got %v", draft.Status)
	}
	if !draft.UpdatedAt.After(published.UpdatedAt) {
		t.Fatal("expected UpdatedAt to advance on unpublish")
	}
}

func TestCourseService_ReorderLesson(t *testing.T) {
	service, store := newTestService(t)
	course, lessons := seedCourse(t, service, "A", "B")

	arranged, err := service.ReorderLesson(context.Background(), lessons[0].ID, core.DirectionDown)
	if err != nil {
		t.Fatalf("ReorderLesson() error = %v", err)
	}
	if got := titlesOf(arranged); got != "B,A" {
		t.Fatalf("expected B,A, got %s", got)
	}
	assertDense(t, store, course.ID)

	before := store.commitCount()
	if _, err := service.ReorderLesson(context.Background(), lessons[1].ID, core.DirectionUp); !errors.Is(err, core.ErrDeclined) {
		t.Fatalf("expected ErrDeclined at top boundary, got %v", err)
	}
	if _, err := service.ReorderLesson(context.Background(), lessons[0].ID, core.DirectionDown); !errors.Is(err, core.ErrDeclined) {
		t.Fatalf("expected ErrDeclined at bottom boundary, got %v", err)
	}
	if store.commitCount() != before {
		t.Fatal("declined reorder must not commit")
	}
	if _, err := service.ReorderLesson(context.Background(), lessons[0].ID, core.DirectionUnspecified); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing direction, got %v", err)
	}
}

func TestCourseService_ReorderRoundTrip(t *testing.T) {
	service, _ := newTestService(t)
	course, lessons := seedCourse(t, service, "A", "B", "C", "D")

	if _, err := service.ReorderLesson(context.Background(), lessons[1].ID, core.DirectionDown); err != nil {
		t.Fatalf("ReorderLesson() error = %v", err)
	}
	if _, err := service.ReorderLesson(context.Background(), lessons[1].ID, core.DirectionUp); err != nil {
		t.Fatalf("ReorderLesson() error = %v", err)
	}

	got, err := service.ListLessons(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("ListLessons() error = %v", err)
	}
	if titlesOf(got) != "A,B,C,D" {
		t.Fatalf("expected original arrangement, got %s", titlesOf(got))
	}
}

func TestCourseService_UpdateLesson(t *testing.T) {
	service, store := newTestService(t)
	course, lessons := seedCourse(t, service, "A", "B")

	_, err := service.UpdateLesson(context.Background(), core.UpdateLessonParams{ID: lessons[1].ID, Title: "B", Order: 1})
	if !errors.Is(err, core.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	updated, err := service.UpdateLesson(context.Background(), core.UpdateLessonParams{ID: lessons[1].ID, Title: "Bravo", Order: 2})
	if err != nil {
		t.Fatalf("UpdateLesson() error = %v", err)
	}
	if updated.Title != "Bravo" || updated.Order != 2 {
		t.Fatalf("unexpected lesson %+v", updated)
	}

	if _, err := service.UpdateLesson(context.Background(), core.UpdateLessonParams{ID: lessons[1].ID, Title: "Bravo", Order: 5}); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation for out-of-range order, got %v", err)
	}
	if _, err := service.UpdateLesson(context.Background(), core.UpdateLessonParams{ID: lessons[1].ID, Title: "Bravo", Order: 0}); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation for non-positive order, got %v", err)
	}
	if _, err := service.UpdateLesson(context.Background(), core.UpdateLessonParams{ID: uuid.New(), Title: "X", Order: 1}); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	assertDense(t, store, course.ID)
}

func TestCourseService_UpdateCourseTitle(t *testing.T) {
	service, _ := newTestService(t)
	course, _ := seedCourse(t, service, "A")

	updated, err := service.UpdateCourseTitle(context.Background(), course.ID, "Renamed")
	if err != nil {
		t.Fatalf("UpdateCourseTitle() error = %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("expected Renamed, got %q", updated.Title)
	}
	if !updated.UpdatedAt.After(course.UpdatedAt) {
		t.Fatal("expected UpdatedAt to advance")
	}
	if _, err := service.UpdateCourseTitle(context.Background(), course.ID, ""); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := service.UpdateCourseTitle(context.Background(), uuid.New(), "X"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCourseService_DeleteCourse(t *testing.T) {
	service, _ := newTestService(t)
	course, lessons := seedCourse(t, service, "A", "B")

	deleted, err := service.DeleteCourse(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("DeleteCourse() error = %v", err)
	}
	if !deleted.IsDeleted {
		t.Fatal("expected course to be tombstoned")
	}

	for _, call := range []func() error{
		func() error { _, err := service.GetCourse(context.Background(), course.ID); return err },
		func() error { _, err := service.DeleteCourse(context.Background(), course.ID); return err },
		func() error { _, err := service.PublishCourse(context.Background(), course.ID); return err },
		func() error { _, err := service.UnpublishCourse(context.Background(), course.ID); return err },
		func() error { _, err := service.UpdateCourseTitle(context.Background(), course.ID, "X"); return err },
		func() error { _, err := service.GetCourseSummary(context.Background(), course.ID); return err },
	} {
		if err := call(); !errors.Is(err, core.ErrNotFound) {
			t.Fatalf("expected ErrNotFound on tombstoned course, got %v", err)
		}
	}

	remaining, err := service.ListLessons(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("ListLessons() error = %v", err)
	}
	if len(remaining) != len(lessons) {
		t.Fatalf("expected lessons to survive course deletion, got %d", len(remaining))
	}
}

func TestCourseService_GetCourseSummary(t *testing.T) {
	service, _ := newTestService(t)
	course, lessons := seedCourse(t, service, "A", "B", "C")

	if _, err := service.DeleteLesson(context.Background(), lessons[0].ID); err != nil {
		t.Fatalf("DeleteLesson() error = %v", err)
	}
	summary, err := service.GetCourseSummary(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("GetCourseSummary() error = %v", err)
	}
	if summary.TotalLessons != 2 {
		t.Fatalf("expected 2 active lessons, got %d", summary.TotalLessons)
	}
	if summary.Title != course.Title || summary.Status != core.CourseStatusDraft {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestCourseService_ListCoursesClampsPageSize(t *testing.T) {
	service, store := newTestService(t)
	seedCourse(t, service, "A")
	seedCourse(t, service, "A")

	page, err := service.ListCourses(context.Background(), core.CourseListFilter{PageSize: 1000, Query: "  cour "})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if store.lastFilter.PageSize != maxPageSize {
		t.Fatalf("expected page size clamp to %d, got %d", maxPageSize, store.lastFilter.PageSize)
	}
	if store.lastFilter.Query != "cour" {
		t.Fatalf("expected trimmed query, got %q", store.lastFilter.Query)
	}
	if page.TotalCount != 2 || len(page.Courses) != 2 {
		t.Fatalf("expected 2 courses, got %+v", page)
	}

	page, err = service.ListCourses(context.Background(), core.CourseListFilter{PageSize: 1})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if len(page.Courses) != 1 || page.NextPageToken == "" {
		t.Fatalf("expected one course and a next page token, got %+v", page)
	}

	if _, err := service.ListCourses(context.Background(), core.CourseListFilter{}); err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if store.lastFilter.PageSize != defaultPageSize {
		t.Fatalf("expected default page size %d, got %d", defaultPageSize, store.lastFilter.PageSize)
	}

	if _, err := service.ListCourses(context.Background(), core.CourseListFilter{PageToken: "bogus"}); !errors.Is(err, core.ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}

func TestCourseService_StoreFailureLeavesStateUnchanged(t *testing.T) {
	service, store := newTestService(t)
	course, lessons := seedCourse(t, service, "A", "B", "C")
	store.commitFn = func(core.ChangeSet) error { return errors.New("connection reset") }

	_, err := service.DeleteLesson(context.Background(), lessons[0].ID)
	if !errors.Is(err, core.ErrStoreFailure) {
		t.Fatalf("expected ErrStoreFailure, got %v", err)
	}

	store.commitFn = nil
	remaining, err := service.ListLessons(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("ListLessons() error = %v", err)
	}
	if titlesOf(remaining) != "A,B,C" {
		t.Fatalf("expected untouched lessons, got %s", titlesOf(remaining))
	}
	assertDense(t, store, course.ID)
}

func TestCourseService_ReadFailureIsStoreFailure(t *testing.T) {
	service, store := newTestService(t)
	store.getLessonFn = func(uuid.UUID) (*core.Lesson, error) { return nil, errors.New("timeout") }

	if _, err := service.GetLesson(context.Background(), uuid.New()); !errors.Is(err, core.ErrStoreFailure) {
		t.Fatalf("expected ErrStoreFailure, got %v", err)
	}
}

func TestCourseService_LockFailure(t *testing.T) {
	store := newMemoryStore()
	course := core.NewCourse("Course", fixedNow)
	store.courses[course.ID] = course

	service := NewCourseService(store, &stubLocker{
		lockFn: func(context.Context, uuid.UUID) (func(), error) { return nil, errors.New("redis down") },
	}, nil)
	if _, err := service.PublishCourse(context.Background(), course.ID); !errors.Is(err, core.ErrStoreFailure) {
		t.Fatalf("expected ErrStoreFailure, got %v", err)
	}

	service = NewCourseService(store, &stubLocker{
		lockFn: func(ctx context.Context, _ uuid.UUID) (func(), error) { return nil, context.Canceled },
	}, nil)
	if _, err := service.PublishCourse(context.Background(), course.ID); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCourseService_LockReleasedOnError(t *testing.T) {
	store := newMemoryStore()
	var acquired, released int
	service := NewCourseService(store, &stubLocker{
		lockFn: func(context.Context, uuid.UUID) (func(), error) {
			acquired++
			return func() { released++ }, nil
		},
	}, nil)

	result, err := service.CreateCourseWithFirstLesson(context.Background(), core.CreateCourseParams{Title: "C", FirstLessonTitle: "A"})
	if err != nil {
		t.Fatalf("CreateCourseWithFirstLesson() error = %v", err)
	}
	if _, err := service.ReorderLesson(context.Background(), result.FirstLesson.ID, core.DirectionUp); !errors.Is(err, core.ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
	store.commitFn = func(core.ChangeSet) error { return errors.New("disk full") }
	if _, err := service.UpdateCourseTitle(context.Background(), result.Course.ID, "New"); !errors.Is(err, core.ErrStoreFailure) {
		t.Fatalf("expected ErrStoreFailure, got %v", err)
	}
	if acquired != 2 || released != 2 {
		t.Fatalf("expected 2 acquisitions and releases, got %d/%d", acquired, released)
	}
}

func TestCourseService_ConcurrentDeletesStayDense(t *testing.T) {
	service, store := newTestService(t)
	course, lessons := seedCourse(t, service, "A", "B", "C", "D", "E", "F", "G", "H")

	// Widen the window between read and commit so unserialised writers would interleave.
	store.readHook = func() { time.Sleep(time.Millisecond) }

	var g errgroup.Group
	for _, victim := range []core.Lesson{lessons[1], lessons[3], lessons[4], lessons[6]} {
		g.Go(func() error {
			_, err := service.DeleteLesson(context.Background(), victim.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("DeleteLesson() error = %v", err)
	}

	remaining, err := service.ListLessons(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("ListLessons() error = %v", err)
	}
	if titlesOf(remaining) != "A,C,F,H" {
		t.Fatalf("expected A,C,F,H, got %s", titlesOf(remaining))
	}
	assertDense(t, store, course.ID)
}

func TestCourseService_ConcurrentMixedOperationsStayDense(t *testing.T) {
	service, store := newTestService(t)
	course, lessons := seedCourse(t, service, "A", "B", "C", "D", "E", "F")
	store.readHook = func() { time.Sleep(200 * time.Microsecond) }

	var g errgroup.Group
	for i := 0; i < 6; i++ {
		g.Go(func() error {
			_, err := service.CreateLesson(context.Background(), core.CreateLessonParams{CourseID: course.ID, Title: "new"})
			return err
		})
	}
	for _, l := range lessons {
		g.Go(func() error {
			_, err := service.ReorderLesson(context.Background(), l.ID, core.DirectionDown)
			if errors.Is(err, core.ErrDeclined) || errors.Is(err, core.ErrNotFound) {
				return nil
			}
			return err
		})
	}
	for _, victim := range lessons[:3] {
		g.Go(func() error {
			_, err := service.DeleteLesson(context.Background(), victim.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent operation error = %v", err)
	}

	if orders := store.activeOrders(course.ID); len(orders) != 9 {
		t.Fatalf("expected 9 active lessons, got %v", orders)
	}
	assertDense(t, store, course.ID)
}
