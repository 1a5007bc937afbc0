package transport

import (
	"context"
	"fmt"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/samber/lo"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"

	"github.com/eslsoft/curriculum/internal/core"
	coursev1 "github.com/eslsoft/curriculum/pkg/api/course/v1"
	"github.com/eslsoft/curriculum/pkg/api/course/v1/coursev1connect"
)

// CourseHandler implements the Connect course service on top of core.CourseService.
type CourseHandler struct {
	service core.CourseService
}

// NewCourseHandler constructs a course handler backed by the provided service.
func NewCourseHandler(service core.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

var _ coursev1connect.CourseServiceHandler = (*CourseHandler)(nil)

// CreateCourse creates a draft course together with its first lesson.
func (h *CourseHandler) CreateCourse(ctx context.Context, req *connect.Request[coursev1.CreateCourseRequest]) (*connect.Response[coursev1.CreateCourseResponse], error) {
	result, err := h.service.CreateCourseWithFirstLesson(ctx, core.CreateCourseParams{
		Title:            req.Msg.Title,
		FirstLessonTitle: req.Msg.FirstLessonTitle,
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.CreateCourseResponse{
		Course:      toAPICourse(&result.Course),
		FirstLesson: toAPILesson(&result.FirstLesson),
	}), nil
}

// GetCourse returns a live course.
func (h *CourseHandler) GetCourse(ctx context.Context, req *connect.Request[coursev1.GetCourseRequest]) (*connect.Response[coursev1.GetCourseResponse], error) {
	id, err := parseID("course_id", req.Msg.CourseId)
	if err != nil {
		return nil, err
	}

	course, err := h.service.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.GetCourseResponse{Course: toAPICourse(course)}), nil
}

// ListCourses returns a filtered, paginated collection of live courses.
func (h *CourseHandler) ListCourses(ctx context.Context, req *connect.Request[coursev1.ListCoursesRequest]) (*connect.Response[coursev1.ListCoursesResponse], error) {
	statuses, err := fromAPIStatuses(req.Msg.Statuses)
	if err != nil {
		return nil, err
	}

	page, err := h.service.ListCourses(ctx, core.CourseListFilter{
		PageSize:  int(req.Msg.PageSize),
		PageToken: req.Msg.PageToken,
		Query:     req.Msg.Query,
		Statuses:  statuses,
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.ListCoursesResponse{
		Courses: lo.Map(page.Courses, func(c core.Course, _ int) *coursev1.Course {
			return toAPICourse(&c)
		}),
		TotalCount:    int32(page.TotalCount),
		NextPageToken: page.NextPageToken,
	}), nil
}

// UpdateCourse renames a live course.
func (h *CourseHandler) UpdateCourse(ctx context.Context, req *connect.Request[coursev1.UpdateCourseRequest]) (*connect.Response[coursev1.UpdateCourseResponse], error) {
	id, err := parseID("course_id", req.Msg.CourseId)
	if err != nil {
		return nil, err
	}

	course, err := h.service.UpdateCourseTitle(ctx, id, req.Msg.Title)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.UpdateCourseResponse{Course: toAPICourse(course)}), nil
}

// DeleteCourse tombstones a course.
func (h *CourseHandler) DeleteCourse(ctx context.Context, req *connect.Request[coursev1.DeleteCourseRequest]) (*connect.Response[coursev1.DeleteCourseResponse], error) {
	id, err := parseID("course_id", req.Msg.CourseId)
	if err != nil {
		return nil, err
	}

	if _, err := h.service.DeleteCourse(ctx, id); err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.DeleteCourseResponse{}), nil
}

// PublishCourse publishes a course that has at least one active lesson.
func (h *CourseHandler) PublishCourse(ctx context.Context, req *connect.Request[coursev1.PublishCourseRequest]) (*connect.Response[coursev1.PublishCourseResponse], error) {
	id, err := parseID("course_id", req.Msg.CourseId)
	if err != nil {
		return nil, err
	}

	course, err := h.service.PublishCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.PublishCourseResponse{Course: toAPICourse(course)}), nil
}

// UnpublishCourse reverts a course to draft.
func (h *CourseHandler) UnpublishCourse(ctx context.Context, req *connect.Request[coursev1.UnpublishCourseRequest]) (*connect.Response[coursev1.UnpublishCourseResponse], error) {
	id, err := parseID("course_id", req.Msg.CourseId)
	if err != nil {
		return nil, err
	}

	course, err := h.service.UnpublishCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.UnpublishCourseResponse{Course: toAPICourse(course)}), nil
}

// GetCourseSummary returns a course with its active lesson count.
func (h *CourseHandler) GetCourseSummary(ctx context.Context, req *connect.Request[coursev1.GetCourseSummaryRequest]) (*connect.Response[coursev1.GetCourseSummaryResponse], error) {
	id, err := parseID("course_id", req.Msg.CourseId)
	if err != nil {
		return nil, err
	}

	summary, err := h.service.GetCourseSummary(ctx, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.GetCourseSummaryResponse{
		Summary: &coursev1.CourseSummary{
			Id:           summary.ID.String(),
			Title:        summary.Title,
			Status:       toAPIStatus(summary.Status),
			TotalLessons: int32(summary.TotalLessons),
			LastModified: toTimestamp(summary.LastModified),
		},
	}), nil
}

// CreateLesson appends a lesson to a course.
func (h *CourseHandler) CreateLesson(ctx context.Context, req *connect.Request[coursev1.CreateLessonRequest]) (*connect.Response[coursev1.CreateLessonResponse], error) {
	courseID, err := parseID("course_id", req.Msg.CourseId)
	if err != nil {
		return nil, err
	}

	lesson, err := h.service.CreateLesson(ctx, core.CreateLessonParams{CourseID: courseID, Title: req.Msg.Title})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.CreateLessonResponse{Lesson: toAPILesson(lesson)}), nil
}

// GetLesson returns an active lesson.
func (h *CourseHandler) GetLesson(ctx context.Context, req *connect.Request[coursev1.GetLessonRequest]) (*connect.Response[coursev1.GetLessonResponse], error) {
	id, err := parseID("lesson_id", req.Msg.LessonId)
	if err != nil {
		return nil, err
	}

	lesson, err := h.service.GetLesson(ctx, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.GetLessonResponse{Lesson: toAPILesson(lesson)}), nil
}

// ListLessons returns the active lessons of a course in position order.
func (h *CourseHandler) ListLessons(ctx context.Context, req *connect.Request[coursev1.ListLessonsRequest]) (*connect.Response[coursev1.ListLessonsResponse], error) {
	courseID, err := parseID("course_id", req.Msg.CourseId)
	if err != nil {
		return nil, err
	}

	lessons, err := h.service.ListLessons(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.ListLessonsResponse{Lessons: toAPILessons(lessons)}), nil
}

// UpdateLesson changes a lesson's title and position.
func (h *CourseHandler) UpdateLesson(ctx context.Context, req *connect.Request[coursev1.UpdateLessonRequest]) (*connect.Response[coursev1.UpdateLessonResponse], error) {
	id, err := parseID("lesson_id", req.Msg.LessonId)
	if err != nil {
		return nil, err
	}

	lesson, err := h.service.UpdateLesson(ctx, core.UpdateLessonParams{
		ID:    id,
		Title: req.Msg.Title,
		Order: int(req.Msg.Order),
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.UpdateLessonResponse{Lesson: toAPILesson(lesson)}), nil
}

// DeleteLesson tombstones a lesson and closes the gap it leaves.
func (h *CourseHandler) DeleteLesson(ctx context.Context, req *connect.Request[coursev1.DeleteLessonRequest]) (*connect.Response[coursev1.DeleteLessonResponse], error) {
	id, err := parseID("lesson_id", req.Msg.LessonId)
	if err != nil {
		return nil, err
	}

	if _, err := h.service.DeleteLesson(ctx, id); err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.DeleteLessonResponse{}), nil
}

// ReorderLesson moves a lesson one step up or down.
func (h *CourseHandler) ReorderLesson(ctx context.Context, req *connect.Request[coursev1.ReorderLessonRequest]) (*connect.Response[coursev1.ReorderLessonResponse], error) {
	id, err := parseID("lesson_id", req.Msg.LessonId)
	if err != nil {
		return nil, err
	}
	direction, err := fromAPIDirection(req.Msg.Direction)
	if err != nil {
		return nil, err
	}

	lessons, err := h.service.ReorderLesson(ctx, id, direction)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.ReorderLessonResponse{Lessons: toAPILessons(lessons)}), nil
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s %q", core.ErrValidation, field, value)
	}
	return id, nil
}

func fromAPIStatuses(values []coursev1.CourseStatus) ([]core.CourseStatus, error) {
	statuses := make([]core.CourseStatus, 0, len(values))
	for _, value := range values {
		status, err := fromAPIStatus(value)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return lo.Uniq(statuses), nil
}

func fromAPIStatus(status coursev1.CourseStatus) (core.CourseStatus, error) {
	switch status {
	case coursev1.CourseStatus_COURSE_STATUS_DRAFT:
		return core.CourseStatusDraft, nil
	case coursev1.CourseStatus_COURSE_STATUS_PUBLISHED:
		return core.CourseStatusPublished, nil
	default:
		return core.CourseStatusUnspecified, fmt.Errorf("%w: invalid course status %d", core.ErrValidation, status)
	}
}

func toAPIStatus(status core.CourseStatus) coursev1.CourseStatus {
	switch status {
	case core.CourseStatusDraft:
		return coursev1.CourseStatus_COURSE_STATUS_DRAFT
	case core.CourseStatusPublished:
		return coursev1.CourseStatus_COURSE_STATUS_PUBLISHED
	case core.CourseStatusUnspecified:
		fallthrough
	default:
		return coursev1.CourseStatus_COURSE_STATUS_UNSPECIFIED
	}
}

func fromAPIDirection(direction coursev1.ReorderDirection) (core.Direction, error) {
	switch direction {
	case coursev1.ReorderDirection_REORDER_DIRECTION_UP:
		return core.DirectionUp, nil
	case coursev1.ReorderDirection_REORDER_DIRECTION_DOWN:
		return core.DirectionDown, nil
	default:
		return core.DirectionUnspecified, fmt.Errorf("%w: invalid reorder direction %d", core.ErrValidation, direction)
	}
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toAPICourse(course *core.Course) *coursev1.Course {
	if course == nil {
		return nil
	}
	return &coursev1.Course{
		Id:        course.ID.String(),
		Title:     course.Title,
		Status:    toAPIStatus(course.Status),
		CreatedAt: toTimestamp(course.CreatedAt),
		UpdatedAt: toTimestamp(course.UpdatedAt),
	}
}

func toAPILesson(lesson *core.Lesson) *coursev1.Lesson {
	if lesson == nil {
		return nil
	}
	return &coursev1.Lesson{
		Id:        lesson.ID.String(),
		CourseId:  lesson.CourseID.String(),
		Title:     lesson.Title,
		Order:     int32(lesson.Order),
		IsDeleted: lesson.IsDeleted,
		CreatedAt: toTimestamp(lesson.CreatedAt),
		UpdatedAt: toTimestamp(lesson.UpdatedAt),
	}
}

func toAPILessons(lessons []core.Lesson) []*coursev1.Lesson {
	return lo.Map(lessons, func(l core.Lesson, _ int) *coursev1.Lesson {
		return toAPILesson(&l)
	})
}
