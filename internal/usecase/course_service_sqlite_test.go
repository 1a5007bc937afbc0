package usecase

import (
	"context"
	stdsql "database/sql"
	"errors"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/eslsoft/curriculum/internal/adapter/db"
	entgenerated "github.com/eslsoft/curriculum/internal/adapter/db/ent/generated"
	"github.com/eslsoft/curriculum/internal/adapter/db/ent/generated/enttest"
	"github.com/eslsoft/curriculum/internal/adapter/lock"
	"github.com/eslsoft/curriculum/internal/core"
)

func newSQLiteService(t *testing.T) (*CourseService, *db.CourseRepository) {
	t.Helper()

	sqlDB, err := stdsql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("failed opening sqlite driver: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	client := enttest.NewClient(t, enttest.WithOptions(entgenerated.Driver(entsql.OpenDB(dialect.SQLite, sqlDB))))
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("failed creating schema: %v", err)
	}

	repo := db.NewCourseRepository(client)
	return NewCourseService(repo, lock.NewLocal(), nil), repo
}

func assertStoredDense(t *testing.T, repo *db.CourseRepository, courseID uuid.UUID, wantCount int) {
	t.Helper()
	active, err := repo.ListActiveLessons(context.Background(), courseID)
	if err != nil {
		t.Fatalf("ListActiveLessons() error = %v", err)
	}
	if len(active) != wantCount {
		t.Fatalf("expected %d active lessons, got %d", wantCount, len(active))
	}
	if !core.IsDense(active) {
		t.Fatalf("stored orders are not dense: %v", active)
	}
}

func TestCourseService_SQLiteConcurrentWritesStayDense(t *testing.T) {
	service, repo := newSQLiteService(t)
	first, firstLessons := seedCourse(t, service, "A", "B", "C", "D", "E", "F")
	second, secondLessons := seedCourse(t, service, "P", "Q", "R", "S")

	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			_, err := service.CreateLesson(context.Background(), core.CreateLessonParams{CourseID: first.ID, Title: "new"})
			return err
		})
	}
	for _, victim := range firstLessons[1:4] {
		g.Go(func() error {
			_, err := service.DeleteLesson(context.Background(), victim.ID)
			return err
		})
	}
	for _, l := range firstLessons {
		g.Go(func() error {
			_, err := service.ReorderLesson(context.Background(), l.ID, core.DirectionUp)
			if errors.Is(err, core.ErrDeclined) || errors.Is(err, core.ErrNotFound) {
				return nil
			}
			return err
		})
	}
	for _, l := range secondLessons {
		g.Go(func() error {
			_, err := service.ReorderLesson(context.Background(), l.ID, core.DirectionDown)
			if errors.Is(err, core.ErrDeclined) || errors.Is(err, core.ErrNotFound) {
				return nil
			}
			return err
		})
	}
	g.Go(func() error {
		_, err := service.DeleteLesson(context.Background(), secondLessons[0].ID)
		if errors.Is(err, core.ErrNotFound) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent writes error = %v", err)
	}

	assertStoredDense(t, repo, first.ID, 6+4-3)
	assertStoredDense(t, repo, second.ID, 3)

	summary, err := service.GetCourseSummary(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("GetCourseSummary() error = %v", err)
	}
	if summary.TotalLessons != 7 {
		t.Fatalf("expected 7 lessons in summary, got %d", summary.TotalLessons)
	}
}

func TestCourseService_SQLiteDeleteKeepsTombstone(t *testing.T) {
	service, repo := newSQLiteService(t)
	course, lessons := seedCourse(t, service, "A", "B", "C")

	if _, err := service.DeleteLesson(context.Background(), lessons[0].ID); err != nil {
		t.Fatalf("DeleteLesson() error = %v", err)
	}
	remaining, err := service.ListLessons(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("ListLessons() error = %v", err)
	}
	if titlesOf(remaining) != "B,C" || remaining[0].Order != 1 || remaining[1].Order != 2 {
		t.Fatalf("expected B,C renumbered from 1, got %v", remaining)
	}

	deleted, err := repo.GetLesson(context.Background(), lessons[0].ID)
	if err != nil {
		t.Fatalf("GetLesson() error = %v", err)
	}
	if !deleted.IsDeleted {
		t.Fatal("expected tombstoned lesson to remain stored")
	}
	assertStoredDense(t, repo, course.ID, 2)
}
