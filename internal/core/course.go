package core

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CourseStatus represents the publish state of a course.
type CourseStatus int

const (
	CourseStatusUnspecified CourseStatus = iota
	CourseStatusDraft
	CourseStatusPublished
)

func (s CourseStatus) String() string {
	switch s {
	case CourseStatusDraft:
		return "draft"
	case CourseStatusPublished:
		return "published"
	default:
		return "unspecified"
	}
}

// Course is the aggregate that owns an ordered set of lessons by foreign key.
type Course struct {
	ID        uuid.UUID
	Title     string
	Status    CourseStatus
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CourseSummary is a read model combining a course with its active lesson count.
type CourseSummary struct {
	ID           uuid.UUID
	Title        string
	Status       CourseStatus
	TotalLessons int
	LastModified time.Time
}

// CourseListFilter describes pagination and filtering options when listing courses.
type CourseListFilter struct {
	PageSize  int
	PageToken string
	Query     string
	Statuses  []CourseStatus
}

// CoursePage is a single page of active courses.
type CoursePage struct {
	Courses       []Course
	TotalCount    int
	NextPageToken string
}

// CreateCourseParams holds the input required to create a course with its first lesson.
type CreateCourseParams struct {
	Title            string
	FirstLessonTitle string
}

// CreateCourseResult bundles the created course and its first lesson.
type CreateCourseResult struct {
	Course      Course
	FirstLesson Lesson
}

// ChangeSet is a unit of work: every row in it is persisted together or not at all.
type ChangeSet struct {
	NewCourses []Course
	Courses    []Course
	NewLessons []Lesson
	Lessons    []Lesson
}

// Empty reports whether the change set carries no rows.
func (c ChangeSet) Empty() bool {
	return len(c.NewCourses) == 0 && len(c.Courses) == 0 && len(c.NewLessons) == 0 && len(c.Lessons) == 0
}

// CourseRepository is the entity store consumed by the course service.
// GetCourse and GetLesson return tombstoned rows as well; callers decide visibility.
type CourseRepository interface {
	GetCourse(ctx context.Context, id uuid.UUID) (*Course, error)
	GetLesson(ctx context.Context, id uuid.UUID) (*Lesson, error)
	ListActiveLessons(ctx context.Context, courseID uuid.UUID) ([]Lesson, error)
	CountActiveLessons(ctx context.Context, courseID uuid.UUID) (int, error)
	ListCourses(ctx context.Context, filter CourseListFilter) (*CoursePage, error)
	Commit(ctx context.Context, changes ChangeSet) error
}

// CourseLocker provides mutual exclusion scoped to a single course.
// The returned release function must be called exactly once.
type CourseLocker interface {
	Lock(ctx context.Context, courseID uuid.UUID) (func(), error)
}

// CourseService exposes the course and lesson use cases to adapters.
type CourseService interface {
	CreateCourseWithFirstLesson(ctx context.Context, params CreateCourseParams) (*CreateCourseResult, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*Course, error)
	ListCourses(ctx context.Context, filter CourseListFilter) (*CoursePage, error)
	GetCourseSummary(ctx context.Context, id uuid.UUID) (*CourseSummary, error)
	UpdateCourseTitle(ctx context.Context, id uuid.UUID, title string) (*Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) (*Course, error)
	PublishCourse(ctx context.Context, id uuid.UUID) (*Course, error)
	UnpublishCourse(ctx context.Context, id uuid.UUID) (*Course, error)

	CreateLesson(ctx context.Context, params CreateLessonParams) (*Lesson, error)
	GetLesson(ctx context.Context, id uuid.UUID) (*Lesson, error)
	ListLessons(ctx context.Context, courseID uuid.UUID) ([]Lesson, error)
	UpdateLesson(ctx context.Context, params UpdateLessonParams) (*Lesson, error)
	DeleteLesson(ctx context.Context, id uuid.UUID) (*Lesson, error)
	ReorderLesson(ctx context.Context, id uuid.UUID, direction Direction) ([]Lesson, error)
}

// NewCourse builds a draft course stamped with now.
func NewCourse(title string, now time.Time) Course {
	return Course{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(title),
		Status:    CourseStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

