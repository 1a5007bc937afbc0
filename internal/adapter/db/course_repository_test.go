package db

import (
	"context"
	stdsql "database/sql"
	"errors"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	entgenerated "github.com/eslsoft/curriculum/internal/adapter/db/ent/generated"
	"github.com/eslsoft/curriculum/internal/adapter/db/ent/generated/enttest"
	"github.com/eslsoft/curriculum/internal/core"
)

var testNow = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func setupCourseRepo(t *testing.T, ctx context.Context) *CourseRepository {
	t.Helper()
	db, err := stdsql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("failed opening sqlite driver: %v", err)
	}
	// Every connection to a memory database sees its own copy.
	db.SetMaxOpenConns(1)
	driver := entsql.OpenDB(dialect.SQLite, db)
	client := enttest.NewClient(t, enttest.WithOptions(entgenerated.Driver(driver)))
	t.Cleanup(func() { _ = client.Close() })

	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("failed creating schema: %v", err)
	}
	return NewCourseRepository(client)
}

func seedCourseForTest(t *testing.T, ctx context.Context, repo *CourseRepository, title string, created time.Time, lessonTitles ...string) (core.Course, []core.Lesson) {
	t.Helper()
	course := core.NewCourse(title, created)
	lessons := make([]core.Lesson, 0, len(lessonTitles))
	for i, lt := range lessonTitles {
		lessons = append(lessons, core.NewLesson(course.ID, lt, i+1, created.Add(time.Duration(i)*time.Second)))
	}
	if err := repo.Commit(ctx, core.ChangeSet{NewCourses: []core.Course{course}, NewLessons: lessons}); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	return course, lessons
}

func TestCourseRepository_CommitAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupCourseRepo(t, ctx)
	course, lessons := seedCourseForTest(t, ctx, repo, "Go Basics", testNow, "Intro")

	got, err := repo.GetCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetCourse() error = %v", err)
	}
	if got.Title != "Go Basics" || got.Status != core.CourseStatusDraft || got.IsDeleted {
		t.Fatalf("unexpected course %+v", got)
	}
	if !got.CreatedAt.Equal(testNow) {
		t.Fatalf("expected CreatedAt %v, got %v", testNow, got.CreatedAt)
	}

	lesson, err := repo.GetLesson(ctx, lessons[0].ID)
	if err != nil {
		t.Fatalf("GetLesson() error = %v", err)
	}
	if lesson.CourseID != course.ID || lesson.Order != 1 || lesson.Title != "Intro" {
		t.Fatalf("unexpected lesson %+v", lesson)
	}

	if _, err := repo.GetCourse(ctx, uuid.New()); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetLesson(ctx, uuid.New()); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCourseRepository_ListActiveLessonsOrdersAndFilters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupCourseRepo(t, ctx)
	course, lessons := seedCourseForTest(t, ctx, repo, "Course", testNow, "A", "B", "C")
	seedCourseForTest(t, ctx, repo, "Other", testNow, "X")

	tombstone := lessons[1]
	tombstone.IsDeleted = true
	tombstone.UpdatedAt = testNow.Add(time.Minute)
	moved := lessons[2]
	moved.Order = 2
	moved.UpdatedAt = testNow.Add(time.Minute)
	if err := repo.Commit(ctx, core.ChangeSet{Lessons: []core.Lesson{tombstone, moved}}); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	active, err := repo.ListActiveLessons(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListActiveLessons() error = %v", err)
	}
	if len(active) != 2 || active[0].Title != "A" || active[1].Title != "C" || active[1].Order != 2 {
		t.Fatalf("unexpected active lessons %+v", active)
	}

	count, err := repo.CountActiveLessons(ctx, course.ID)
	if err != nil {
		t.Fatalf("CountActiveLessons() error = %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 active lessons, got %d", count)
	}

	stored, err := repo.GetLesson(ctx, tombstone.ID)
	if err != nil {
		t.Fatalf("GetLesson() error = %v", err)
	}
	if !stored.IsDeleted || stored.Order != 2 {
		t.Fatalf("expected tombstone to keep order 2, got %+v", stored)
	}
}

func TestCourseRepository_CommitIsAtomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupCourseRepo(t, ctx)
	course, lessons := seedCourseForTest(t, ctx, repo, "Course", testNow, "A", "B")

	renamed := lessons[0]
	renamed.Title = "Renamed"
	missing := core.NewLesson(course.ID, "ghost", 3, testNow)

	err := repo.Commit(ctx, core.ChangeSet{Lessons: []core.Lesson{renamed, missing}})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing row, got %v", err)
	}

	got, err := repo.GetLesson(ctx, lessons[0].ID)
	if err != nil {
		t.Fatalf("GetLesson() error = %v", err)
	}
	if got.Title != "A" {
		t.Fatalf("expected rollback to keep title A, got %q", got.Title)
	}

	orphan := core.NewLesson(uuid.New(), "orphan", 1, testNow)
	if err := repo.Commit(ctx, core.ChangeSet{NewLessons: []core.Lesson{orphan}}); err == nil {
		t.Fatal("expected foreign key violation for lesson without course")
	}
}

func TestCourseRepository_UpdateCourse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupCourseRepo(t, ctx)
	course, _ := seedCourseForTest(t, ctx, repo, "Course", testNow, "A")

	course.Status = core.CourseStatusPublished
	course.IsDeleted = true
	course.UpdatedAt = testNow.Add(time.Hour)
	if err := repo.Commit(ctx, core.ChangeSet{Courses: []core.Course{course}}); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	got, err := repo.GetCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetCourse() error = %v", err)
	}
	if got.Status != core.CourseStatusPublished || !got.IsDeleted || !got.UpdatedAt.Equal(course.UpdatedAt) {
		t.Fatalf("unexpected course %+v", got)
	}
}

func TestCourseRepository_ListCourses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupCourseRepo(t, ctx)

	oldest, _ := seedCourseForTest(t, ctx, repo, "Go Basics", testNow, "A")
	middle, _ := seedCourseForTest(t, ctx, repo, "Advanced Go", testNow.Add(time.Hour), "A")
	newest, _ := seedCourseForTest(t, ctx, repo, "Rust Intro", testNow.Add(2*time.Hour), "A")
	deleted, _ := seedCourseForTest(t, ctx, repo, "Deleted Go", testNow.Add(3*time.Hour), "A")

	deleted.IsDeleted = true
	middle.Status = core.CourseStatusPublished
	if err := repo.Commit(ctx, core.ChangeSet{Courses: []core.Course{deleted, middle}}); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	page, err := repo.ListCourses(ctx, core.CourseListFilter{PageSize: 2})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if page.TotalCount != 3 {
		t.Fatalf("expected 3 live courses, got %d", page.TotalCount)
	}
	if len(page.Courses) != 2 || page.Courses[0].ID != newest.ID || page.Courses[1].ID != middle.ID {
		t.Fatalf("unexpected first page %+v", page.Courses)
	}
	if page.NextPageToken != "2" {
		t.Fatalf("expected next page token 2, got %q", page.NextPageToken)
	}

	page, err = repo.ListCourses(ctx, core.CourseListFilter{PageSize: 2, PageToken: page.NextPageToken})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if len(page.Courses) != 1 || page.Courses[0].ID != oldest.ID || page.NextPageToken != "" {
		t.Fatalf("unexpected second page %+v", page)
	}

	page, err = repo.ListCourses(ctx, core.CourseListFilter{PageSize: 10, Query: "go"})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if page.TotalCount != 2 {
		t.Fatalf("expected 2 courses matching go, got %d", page.TotalCount)
	}

	page, err = repo.ListCourses(ctx, core.CourseListFilter{PageSize: 10, Statuses: []core.CourseStatus{core.CourseStatusPublished}})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if len(page.Courses) != 1 || page.Courses[0].ID != middle.ID {
		t.Fatalf("expected only the published course, got %+v", page.Courses)
	}

	if _, err := repo.ListCourses(ctx, core.CourseListFilter{PageToken: "-1"}); !errors.Is(err, core.ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}

func TestCourseRepository_SchemaRulesEnforced(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupCourseRepo(t, ctx)
	course, _ := seedCourseForTest(t, ctx, repo, "Course", testNow)

	zero := core.NewLesson(course.ID, "zero", 0, testNow)
	err := repo.Commit(ctx, core.ChangeSet{NewLessons: []core.Lesson{zero}})
	if !entgenerated.IsValidationError(err) {
		t.Fatalf("expected validation error for non-positive position, got %v", err)
	}
	if _, err := repo.GetLesson(ctx, zero.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected rejected lesson to be absent, got %v", err)
	}

	created, err := repo.client.Course.Create().SetTitle("Defaults").Save(ctx)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == uuid.Nil || created.CreatedAt.IsZero() || created.IsDeleted {
		t.Fatalf("expected schema defaults to apply, got %+v", created)
	}

	updated, err := repo.client.Course.UpdateOneID(created.ID).SetTitle("Renamed").Save(ctx)
	if err != nil {
		t.Fatalf("UpdateOneID() error = %v", err)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("expected updated_at to move forward, got %v then %v", created.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected created_at to stay %v, got %v", created.CreatedAt, updated.CreatedAt)
	}
}
