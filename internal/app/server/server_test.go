package server

import (
	"context"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/eslsoft/curriculum/internal/config"
	coursev1 "github.com/eslsoft/curriculum/pkg/api/course/v1"
	"github.com/eslsoft/curriculum/pkg/api/course/v1/coursev1connect"
)

func TestInitializeServer(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", config.DriverSQLite)
	t.Setenv("DATABASE_URL", "file:"+uuid.NewString()+"?mode=memory&_pragma=foreign_keys(1)")
	t.Setenv("LOCK_BACKEND", config.LockBackendLocal)
	t.Setenv("LOG_MODE", "development")
	t.Setenv("HTTP_ADDRESS", ":18080")

	srv, cleanup, err := InitializeServer()
	if err != nil {
		t.Fatalf("InitializeServer() error = %v", err)
	}
	t.Cleanup(cleanup)

	if srv.httpServer.Addr != ":18080" {
		t.Fatalf("expected address :18080, got %q", srv.httpServer.Addr)
	}

	ts := httptest.NewServer(srv.httpServer.Handler)
	defer ts.Close()

	client := coursev1connect.NewCourseServiceClient(ts.Client(), ts.URL)
	created, err := client.CreateCourse(context.Background(), connect.NewRequest(&coursev1.CreateCourseRequest{
		Title:            "Wired",
		FirstLessonTitle: "First",
	}))
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}

	summary, err := client.GetCourseSummary(context.Background(), connect.NewRequest(&coursev1.GetCourseSummaryRequest{
		CourseId: created.Msg.Course.Id,
	}))
	if err != nil {
		t.Fatalf("GetCourseSummary() error = %v", err)
	}
	if summary.Msg.Summary.TotalLessons != 1 {
		t.Fatalf("expected 1 active lesson, got %d", summary.Msg.Summary.TotalLessons)
	}
}

func TestInitializeServer_InvalidConfig(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("DATABASE_URL", "root@tcp(localhost)/curriculum")

	if _, _, err := InitializeServer(); err == nil {
		t.Fatal("expected InitializeServer() to fail on an unsupported driver")
	}
}
