package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/eslsoft/curriculum/internal/adapter/db"
	"github.com/eslsoft/curriculum/internal/adapter/lock"
	"github.com/eslsoft/curriculum/internal/adapter/transport"
	"github.com/eslsoft/curriculum/internal/config"
	"github.com/eslsoft/curriculum/internal/usecase"
	coursev1 "github.com/eslsoft/curriculum/pkg/api/course/v1"
	"github.com/eslsoft/curriculum/pkg/api/course/v1/coursev1connect"
)

func newTestHandler(t *testing.T, cfg config.Config) http.Handler {
	t.Helper()

	cfg.DatabaseDriver = config.DriverSQLite
	cfg.DatabaseURL = "file:" + uuid.NewString() + "?mode=memory&_pragma=foreign_keys(1)"
	client, cleanup, err := NewEntClient(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewEntClient() error = %v", err)
	}
	t.Cleanup(cleanup)

	validator, err := NewProtoValidator()
	if err != nil {
		t.Fatalf("NewProtoValidator() error = %v", err)
	}

	svc := usecase.NewCourseService(db.NewCourseRepository(client), lock.NewLocal(), zap.NewNop())
	handler, err := NewHTTPHandler(cfg, transport.NewCourseHandler(svc), validator, noop.NewTracerProvider(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewHTTPHandler() error = %v", err)
	}
	return handler
}

func TestHTTPHandler_Healthz(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t, config.Config{CORSAllowedOrigins: []string{"*"}}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health response %d %q", resp.StatusCode, body)
	}
}

func TestHTTPHandler_CORSPreflight(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t, config.Config{CORSAllowedOrigins: []string{"https://app.example.com"}}))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+coursev1connect.CourseServiceCreateCourseProcedure, nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight error = %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}

func TestHTTPHandler_ServesCourseService(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t, config.Config{CORSAllowedOrigins: []string{"*"}}))
	defer srv.Close()

	client := coursev1connect.NewCourseServiceClient(srv.Client(), srv.URL)
	created, err := client.CreateCourse(context.Background(), connect.NewRequest(&coursev1.CreateCourseRequest{
		Title:            "Go basics",
		FirstLessonTitle: "Hello",
	}))
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	if created.Msg.Course.Status != coursev1.CourseStatus_COURSE_STATUS_DRAFT {
		t.Fatalf("expected draft course, got %s", created.Msg.Course.Status)
	}
}

func TestHTTPHandler_ServesProtoJSON(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t, config.Config{CORSAllowedOrigins: []string{"*"}}))
	defer srv.Close()

	client := coursev1connect.NewCourseServiceClient(srv.Client(), srv.URL, connect.WithProtoJSON())
	created, err := client.CreateCourse(context.Background(), connect.NewRequest(&coursev1.CreateCourseRequest{
		Title:            "Go basics",
		FirstLessonTitle: "Hello",
	}))
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}

	listed, err := client.ListLessons(context.Background(), connect.NewRequest(&coursev1.ListLessonsRequest{
		CourseId: created.Msg.Course.Id,
	}))
	if err != nil {
		t.Fatalf("ListLessons() error = %v", err)
	}
	if len(listed.Msg.Lessons) != 1 || listed.Msg.Lessons[0].Order != 1 {
		t.Fatalf("unexpected lessons %+v", listed.Msg.Lessons)
	}
}
