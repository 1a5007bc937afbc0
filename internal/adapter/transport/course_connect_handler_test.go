package transport

import (
	"context"
	stdsql "database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	protovalidate "buf.build/go/protovalidate"
	"connectrpc.com/connect"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/eslsoft/curriculum/internal/adapter/db"
	entgenerated "github.com/eslsoft/curriculum/internal/adapter/db/ent/generated"
	"github.com/eslsoft/curriculum/internal/adapter/db/ent/generated/enttest"
	"github.com/eslsoft/curriculum/internal/adapter/lock"
	"github.com/eslsoft/curriculum/internal/usecase"
	coursev1 "github.com/eslsoft/curriculum/pkg/api/course/v1"
	"github.com/eslsoft/curriculum/pkg/api/course/v1/coursev1connect"
)

func newTestClient(t *testing.T) coursev1connect.CourseServiceClient {
	t.Helper()
	ctx := context.Background()

	sqlDB, err := stdsql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("failed opening sqlite driver: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	driver := entsql.OpenDB(dialect.SQLite, sqlDB)
	client := enttest.NewClient(t, enttest.WithOptions(entgenerated.Driver(driver)))
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("failed creating schema: %v", err)
	}

	validator, err := protovalidate.New()
	if err != nil {
		t.Fatalf("protovalidate.New() error = %v", err)
	}

	service := usecase.NewCourseService(db.NewCourseRepository(client), lock.NewLocal(), zap.NewNop())
	path, handler := coursev1connect.NewCourseServiceHandler(NewCourseHandler(service),
		connect.WithInterceptors(
			NewLoggingInterceptor(zap.NewNop()),
			NewErrorInterceptor(),
			NewAuthInterceptor(""),
			NewValidationInterceptor(validator),
		),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return coursev1connect.NewCourseServiceClient(server.Client(), server.URL)
}

func lessonTitles(lessons []*coursev1.Lesson) string {
	titles := make([]string, 0, len(lessons))
	for _, l := range lessons {
		titles = append(titles, l.Title)
	}
	return strings.Join(titles, ",")
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (err = %v)", want, got, err)
	}
}

func TestCourseHandler_LessonLifecycle(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	created, err := client.CreateCourse(ctx, connect.NewRequest(&coursev1.CreateCourseRequest{
		Title:            "Go Basics",
		FirstLessonTitle: "A",
	}))
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	courseID := created.Msg.Course.Id
	if created.Msg.Course.Status != coursev1.CourseStatus_COURSE_STATUS_DRAFT || created.Msg.FirstLesson.Order != 1 {
		t.Fatalf("unexpected create response %+v", created.Msg)
	}
	if created.Msg.Course.GetCreatedAt().AsTime().IsZero() || !created.Msg.FirstLesson.GetUpdatedAt().IsValid() {
		t.Fatalf("expected timestamps on create response %+v", created.Msg)
	}

	var ids []string
	ids = append(ids, created.Msg.FirstLesson.Id)
	for _, title := range []string{"B", "C"} {
		res, err := client.CreateLesson(ctx, connect.NewRequest(&coursev1.CreateLessonRequest{CourseId: courseID, Title: title}))
		if err != nil {
			t.Fatalf("CreateLesson() error = %v", err)
		}
		ids = append(ids, res.Msg.Lesson.Id)
	}

	if _, err := client.DeleteLesson(ctx, connect.NewRequest(&coursev1.DeleteLessonRequest{LessonId: ids[1]})); err != nil {
		t.Fatalf("DeleteLesson() error = %v", err)
	}

	listed, err := client.ListLessons(ctx, connect.NewRequest(&coursev1.ListLessonsRequest{CourseId: courseID}))
	if err != nil {
		t.Fatalf("ListLessons() error = %v", err)
	}
	if lessonTitles(listed.Msg.Lessons) != "A,C" || listed.Msg.Lessons[1].Order != 2 {
		t.Fatalf("unexpected lessons after delete %+v", listed.Msg.Lessons)
	}

	reordered, err := client.ReorderLesson(ctx, connect.NewRequest(&coursev1.ReorderLessonRequest{LessonId: ids[0], Direction: coursev1.ReorderDirection_REORDER_DIRECTION_DOWN}))
	if err != nil {
		t.Fatalf("ReorderLesson() error = %v", err)
	}
	if lessonTitles(reordered.Msg.Lessons) != "C,A" {
		t.Fatalf("expected C,A, got %s", lessonTitles(reordered.Msg.Lessons))
	}

	_, err = client.ReorderLesson(ctx, connect.NewRequest(&coursev1.ReorderLessonRequest{LessonId: ids[2], Direction: coursev1.ReorderDirection_REORDER_DIRECTION_UP}))
	expectCode(t, err, connect.CodeFailedPrecondition)

	_, err = client.UpdateLesson(ctx, connect.NewRequest(&coursev1.UpdateLessonRequest{LessonId: ids[0], Title: "A", Order: 1}))
	expectCode(t, err, connect.CodeAlreadyExists)

	_, err = client.GetLesson(ctx, connect.NewRequest(&coursev1.GetLessonRequest{LessonId: ids[1]}))
	expectCode(t, err, connect.CodeNotFound)

	summary, err := client.GetCourseSummary(ctx, connect.NewRequest(&coursev1.GetCourseSummaryRequest{CourseId: courseID}))
	if err != nil {
		t.Fatalf("GetCourseSummary() error = %v", err)
	}
	if summary.Msg.Summary.TotalLessons != 2 {
		t.Fatalf("expected 2 active lessons, got %d", summary.Msg.Summary.TotalLessons)
	}
}

func TestCourseHandler_PublishGate(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	created, err := client.CreateCourse(ctx, connect.NewRequest(&coursev1.CreateCourseRequest{Title: "Course", FirstLessonTitle: "Only"}))
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	courseID := created.Msg.Course.Id

	if _, err := client.DeleteLesson(ctx, connect.NewRequest(&coursev1.DeleteLessonRequest{LessonId: created.Msg.FirstLesson.Id})); err != nil {
		t.Fatalf("DeleteLesson() error = %v", err)
	}
	_, err = client.PublishCourse(ctx, connect.NewRequest(&coursev1.PublishCourseRequest{CourseId: courseID}))
	expectCode(t, err, connect.CodeFailedPrecondition)

	if _, err := client.CreateLesson(ctx, connect.NewRequest(&coursev1.CreateLessonRequest{CourseId: courseID, Title: "Again"})); err != nil {
		t.Fatalf("CreateLesson() error = %v", err)
	}
	published, err := client.PublishCourse(ctx, connect.NewRequest(&coursev1.PublishCourseRequest{CourseId: courseID}))
	if err != nil {
		t.Fatalf("PublishCourse() error = %v", err)
	}
	if published.Msg.Course.Status != coursev1.CourseStatus_COURSE_STATUS_PUBLISHED {
		t.Fatalf("expected published, got %s", published.Msg.Course.Status)
	}

	listed, err := client.ListCourses(ctx, connect.NewRequest(&coursev1.ListCoursesRequest{Statuses: []coursev1.CourseStatus{coursev1.CourseStatus_COURSE_STATUS_PUBLISHED}}))
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if listed.Msg.TotalCount != 1 || listed.Msg.Courses[0].Id != courseID {
		t.Fatalf("unexpected course list %+v", listed.Msg)
	}

	unpublished, err := client.UnpublishCourse(ctx, connect.NewRequest(&coursev1.UnpublishCourseRequest{CourseId: courseID}))
	if err != nil {
		t.Fatalf("UnpublishCourse() error = %v", err)
	}
	if unpublished.Msg.Course.Status != coursev1.CourseStatus_COURSE_STATUS_DRAFT {
		t.Fatalf("expected draft, got %s", unpublished.Msg.Course.Status)
	}

	if _, err := client.DeleteCourse(ctx, connect.NewRequest(&coursev1.DeleteCourseRequest{CourseId: courseID})); err != nil {
		t.Fatalf("DeleteCourse() error = %v", err)
	}
	_, err = client.GetCourse(ctx, connect.NewRequest(&coursev1.GetCourseRequest{CourseId: courseID}))
	expectCode(t, err, connect.CodeNotFound)
	_, err = client.UpdateCourse(ctx, connect.NewRequest(&coursev1.UpdateCourseRequest{CourseId: courseID, Title: "New"}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestCourseHandler_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.CreateCourse(ctx, connect.NewRequest(&coursev1.CreateCourseRequest{Title: "", FirstLessonTitle: "A"}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = client.CreateCourse(ctx, connect.NewRequest(&coursev1.CreateCourseRequest{Title: "   ", FirstLessonTitle: "A"}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = client.GetCourse(ctx, connect.NewRequest(&coursev1.GetCourseRequest{CourseId: "nope"}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = client.GetCourse(ctx, connect.NewRequest(&coursev1.GetCourseRequest{CourseId: uuid.NewString()}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = client.ListCourses(ctx, connect.NewRequest(&coursev1.ListCoursesRequest{PageToken: "abc"}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = client.ReorderLesson(ctx, connect.NewRequest(&coursev1.ReorderLessonRequest{LessonId: uuid.NewString()}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = client.ListCourses(ctx, connect.NewRequest(&coursev1.ListCoursesRequest{PageSize: 500}))
	expectCode(t, err, connect.CodeInvalidArgument)
}
