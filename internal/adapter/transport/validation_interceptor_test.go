package transport

import (
	"context"
	"errors"
	"testing"

	protovalidate "buf.build/go/protovalidate"
	"connectrpc.com/connect"

	"github.com/eslsoft/curriculum/internal/core"
	coursev1 "github.com/eslsoft/curriculum/pkg/api/course/v1"
)

const sampleID = "8f14e45f-ceea-4e7a-9c1e-6b5f3b1f2a10"

func TestValidationInterceptor_AllowsValidRequest(t *testing.T) {
	validator, err := protovalidate.New()
	if err != nil {
		t.Fatalf("protovalidate.New() error = %v", err)
	}

	interceptor := NewValidationInterceptor(validator)
	nextCalled := false
	unary := interceptor.WrapUnary(okUnary(&nextCalled))

	req := connect.NewRequest(&coursev1.CreateLessonRequest{
		CourseId: sampleID,
		Title:    "Intro",
	})

	if _, err := unary(context.Background(), req); err != nil {
		t.Fatalf("unary() error = %v", err)
	}
	if !nextCalled {
		t.Fatal("expected next to be called")
	}
}

func TestValidationInterceptor_InvalidRequestReturnsValidationError(t *testing.T) {
	validator, err := protovalidate.New()
	if err != nil {
		t.Fatalf("protovalidate.New() error = %v", err)
	}

	interceptor := NewValidationInterceptor(validator)
	nextCalled := false
	unary := interceptor.WrapUnary(okUnary(&nextCalled))

	cases := map[string]connect.AnyRequest{
		"course id not a uuid":      connect.NewRequest(&coursev1.CreateLessonRequest{CourseId: "not-a-uuid", Title: "Intro"}),
		"missing first lesson":      connect.NewRequest(&coursev1.CreateCourseRequest{Title: "Course"}),
		"unspecified direction":     connect.NewRequest(&coursev1.ReorderLessonRequest{LessonId: sampleID}),
		"undefined direction":       connect.NewRequest(&coursev1.ReorderLessonRequest{LessonId: sampleID, Direction: 7}),
		"order below one":           connect.NewRequest(&coursev1.UpdateLessonRequest{LessonId: sampleID, Title: "x", Order: 0}),
		"page size too large":       connect.NewRequest(&coursev1.ListCoursesRequest{PageSize: 101}),
		"unspecified status filter": connect.NewRequest(&coursev1.ListCoursesRequest{Statuses: []coursev1.CourseStatus{0}}),
	}
	for name, req := range cases {
		if _, err := unary(context.Background(), req); err == nil {
			t.Fatalf("%s: expected validation error for invalid request", name)
		} else if !errors.Is(err, core.ErrValidation) {
			t.Fatalf("%s: expected error to wrap core.ErrValidation, got %v", name, err)
		}
	}
	if nextCalled {
		t.Fatal("expected interceptor to block invalid request before calling next")
	}
}

func TestValidationInterceptor_AllowsWhenValidatorNil(t *testing.T) {
	interceptor := NewValidationInterceptor(nil)
	nextCalled := false
	unary := interceptor.WrapUnary(okUnary(&nextCalled))

	req := connect.NewRequest(&coursev1.CreateLessonRequest{})

	if _, err := unary(context.Background(), req); err != nil {
		t.Fatalf("unary() error = %v", err)
	}
	if !nextCalled {
		t.Fatal("expected next to be called when validator is nil")
	}
}
