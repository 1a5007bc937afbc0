package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eslsoft/curriculum/internal/core"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// CourseService coordinates course and lesson use cases. Every mutation holds the
// course lock across read, compute and commit, and issues exactly one commit.
type CourseService struct {
	repo   core.CourseRepository
	locker core.CourseLocker
	logger *zap.Logger
	now    func() time.Time
}

// NewCourseService constructs a CourseService backed by the provided repository and locker.
func NewCourseService(repo core.CourseRepository, locker core.CourseLocker, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{
		repo:   repo,
		locker: locker,
		logger: logger.Named("course_service"),
		now:    time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *CourseService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.CourseService = (*CourseService)(nil)

// CreateCourseWithFirstLesson creates a draft course and its first lesson in one commit.
func (s *CourseService) CreateCourseWithFirstLesson(ctx context.Context, params core.CreateCourseParams) (*core.CreateCourseResult, error) {
	if err := requireText("course title", params.Title); err != nil {
		return nil, err
	}
	if err := requireText("first lesson title", params.FirstLessonTitle); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	course := core.NewCourse(params.Title, now)
	lesson := core.NewLesson(course.ID, params.FirstLessonTitle, core.NextOrderForInsert(nil), now)

	if err := s.commit(ctx, core.ChangeSet{
		NewCourses: []core.Course{course},
		NewLessons: []core.Lesson{lesson},
	}); err != nil {
		return nil, err
	}

	return &core.CreateCourseResult{Course: course, FirstLesson: lesson}, nil
}

// GetCourse returns a live course.
func (s *CourseService) GetCourse(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	return s.liveCourse(ctx, id)
}

// ListCourses returns a filtered, paginated collection of live courses.
func (s *CourseService) ListCourses(ctx context.Context, filter core.CourseListFilter) (*core.CoursePage, error) {
	if filter.PageSize <= 0 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	filter.Query = strings.TrimSpace(filter.Query)

	page, err := s.repo.ListCourses(ctx, filter)
	if err != nil {
		return nil, storeError(err)
	}
	return page, nil
}

// GetCourseSummary returns a live course with its active lesson count.
func (s *CourseService) GetCourseSummary(ctx context.Context, id uuid.UUID) (*core.CourseSummary, error) {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountActiveLessons(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return &core.CourseSummary{
		ID:           course.ID,
		Title:        course.Title,
		Status:       course.Status,
		TotalLessons: total,
		LastModified: course.UpdatedAt,
	}, nil
}

// UpdateCourseTitle renames a live course.
func (s *CourseService) UpdateCourseTitle(ctx context.Context, id uuid.UUID, title string) (*core.Course, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	if err := requireText("course title", title); err != nil {
		return nil, err
	}

	var updated core.Course
	err := s.withCourseLock(ctx, id, func() error {
		course, err := s.liveCourse(ctx, id)
		if err != nil {
			return err
		}
		course.Title = strings.TrimSpace(title)
		course.UpdatedAt = s.now().UTC()
		updated = *course
		return s.commit(ctx, core.ChangeSet{Courses: []core.Course{updated}})
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCourse tombstones a course. Lessons of the course are left as they are.
func (s *CourseService) DeleteCourse(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}

	var deleted core.Course
	err := s.withCourseLock(ctx, id, func() error {
		course, err := s.repo.GetCourse(ctx, id)
		if err != nil {
			return storeError(err)
		}
		if err := core.TombstoneCourse(course, s.now().UTC()); err != nil {
			return err
		}
		deleted = *course
		return s.commit(ctx, core.ChangeSet{Courses: []core.Course{deleted}})
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// PublishCourse moves a live course to Published when it has at least one active lesson.
func (s *CourseService) PublishCourse(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}

	var published core.Course
	err := s.withCourseLock(ctx, id, func() error {
		course, err := s.liveCourse(ctx, id)
		if err != nil {
			return err
		}
		active, err := s.repo.CountActiveLessons(ctx, id)
		if err != nil {
			return storeError(err)
		}
		if err := core.Publish(course, active, s.now().UTC()); err != nil {
			s.logger.Debug("publish declined", zap.Stringer("course_id", id), zap.Error(err))
			return err
		}
		published = *course
		return s.commit(ctx, core.ChangeSet{Courses: []core.Course{published}})
	})
	if err != nil {
		return nil, err
	}
	return &published, nil
}

// UnpublishCourse reverts a live course to Draft.
func (s *CourseService) UnpublishCourse(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}

	var draft core.Course
	err := s.withCourseLock(ctx, id, func() error {
		course, err := s.liveCourse(ctx, id)
		if err != nil {
			return err
		}
		if err := core.Unpublish(course, s.now().UTC()); err != nil {
			return err
		}
		draft = *course
		return s.commit(ctx, core.ChangeSet{Courses: []core.Course{draft}})
	})
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// CreateLesson appends a lesson to a live course.
func (s *CourseService) CreateLesson(ctx context.Context, params core.CreateLessonParams) (*core.Lesson, error) {
	if params.CourseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	if err := requireText("lesson title", params.Title); err != nil {
		return nil, err
	}

	var created core.Lesson
	err := s.withCourseLock(ctx, params.CourseID, func() error {
		if _, err := s.liveCourse(ctx, params.CourseID); err != nil {
			return err
		}
		active, err := s.repo.ListActiveLessons(ctx, params.CourseID)
		if err != nil {
			return storeError(err)
		}
		created = core.NewLesson(params.CourseID, params.Title, core.NextOrderForInsert(active), s.now().UTC())
		return s.commit(ctx, core.ChangeSet{NewLessons: []core.Lesson{created}})
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetLesson returns an active lesson.
func (s *CourseService) GetLesson(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: lesson id required", core.ErrValidation)
	}
	return s.activeLesson(ctx, id)
}

// ListLessons returns the active lessons of a course in position order. Lessons of a
// tombstoned course stay listable because course deletion does not cascade.
func (s *CourseService) ListLessons(ctx context.Context, courseID uuid.UUID) ([]core.Lesson, error) {
	if courseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	if _, err := s.repo.GetCourse(ctx, courseID); err != nil {
		return nil, storeError(err)
	}
	lessons, err := s.repo.ListActiveLessons(ctx, courseID)
	if err != nil {
		return nil, storeError(err)
	}
	core.SortLessons(lessons)
	return lessons, nil
}

// UpdateLesson changes the title and position of an active lesson. A position held by
// another active lesson is a conflict; positions outside 1..N are rejected so the
// active sequence stays dense.
func (s *CourseService) UpdateLesson(ctx context.Context, params core.UpdateLessonParams) (*core.Lesson, error) {
	if params.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: lesson id required", core.ErrValidation)
	}
	if err := requireText("lesson title", params.Title); err != nil {
		return nil, err
	}
	if params.Order < 1 {
		return nil, fmt.Errorf("%w: order must be positive, got %d", core.ErrValidation, params.Order)
	}

	var updated core.Lesson
	err := s.withLessonLock(ctx, params.ID, func(lesson *core.Lesson) error {
		active, err := s.repo.ListActiveLessons(ctx, lesson.CourseID)
		if err != nil {
			return storeError(err)
		}
		if err := core.ValidateOrderAssignment(lesson.CourseID, params.Order, lesson.ID, active); err != nil {
			s.logger.Debug("lesson order rejected", zap.Stringer("lesson_id", lesson.ID), zap.Int("order", params.Order), zap.Error(err))
			return err
		}
		if params.Order > len(active) {
			return fmt.Errorf("%w: order must be between 1 and %d", core.ErrValidation, len(active))
		}

		lesson.Title = strings.TrimSpace(params.Title)
		lesson.Order = params.Order
		lesson.UpdatedAt = s.now().UTC()
		updated = *lesson
		return s.commit(ctx, core.ChangeSet{Lessons: []core.Lesson{updated}})
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteLesson tombstones a lesson and renumbers its active siblings in the same commit.
func (s *CourseService) DeleteLesson(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: lesson id required", core.ErrValidation)
	}

	var deleted core.Lesson
	err := s.withLessonLock(ctx, id, func(lesson *core.Lesson) error {
		active, err := s.repo.ListActiveLessons(ctx, lesson.CourseID)
		if err != nil {
			return storeError(err)
		}

		now := s.now().UTC()
		if err := core.TombstoneLesson(lesson, now); err != nil {
			return err
		}
		_, renumbered := core.ApplyPlacements(active, core.Renumber(lesson.ID, active), now)

		deleted = *lesson
		return s.commit(ctx, core.ChangeSet{
			Lessons: append([]core.Lesson{deleted}, renumbered...),
		})
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// ReorderLesson swaps an active lesson with its neighbour and returns the resulting
// active lessons in position order.
func (s *CourseService) ReorderLesson(ctx context.Context, id uuid.UUID, direction core.Direction) ([]core.Lesson, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: lesson id required", core.ErrValidation)
	}
	if direction != core.DirectionUp && direction != core.DirectionDown {
		return nil, fmt.Errorf("%w: direction must be up or down", core.ErrValidation)
	}

	var arranged []core.Lesson
	err := s.withLessonLock(ctx, id, func(lesson *core.Lesson) error {
		active, err := s.repo.ListActiveLessons(ctx, lesson.CourseID)
		if err != nil {
			return storeError(err)
		}
		placements, err := core.Move(lesson.ID, direction, active)
		if err != nil {
			s.logger.Debug("reorder declined", zap.Stringer("lesson_id", lesson.ID), zap.Stringer("direction", direction), zap.Error(err))
			return err
		}

		all, changed := core.ApplyPlacements(active, placements, s.now().UTC())
		arranged = all
		return s.commit(ctx, core.ChangeSet{Lessons: changed})
	})
	if err != nil {
		return nil, err
	}
	return arranged, nil
}

func (s *CourseService) liveCourse(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	course, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	if course.IsDeleted {
		return nil, fmt.Errorf("%w: course %s", core.ErrNotFound, id)
	}
	return course, nil
}

func (s *CourseService) activeLesson(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
	lesson, err := s.repo.GetLesson(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	if lesson.IsDeleted {
		return nil, fmt.Errorf("%w: lesson %s", core.ErrNotFound, id)
	}
	return lesson, nil
}

// withLessonLock resolves the lesson's course, takes the course lock and re-reads the
// lesson so fn sees the state committed by any writer that held the lock before us.
// Lessons of a deleted course are read-only.
func (s *CourseService) withLessonLock(ctx context.Context, id uuid.UUID, fn func(lesson *core.Lesson) error) error {
	lesson, err := s.activeLesson(ctx, id)
	if err != nil {
		return err
	}
	return s.withCourseLock(ctx, lesson.CourseID, func() error {
		current, err := s.activeLesson(ctx, id)
		if err != nil {
			return err
		}
		if _, err := s.liveCourse(ctx, current.CourseID); err != nil {
			return err
		}
		return fn(current)
	})
}

func (s *CourseService) withCourseLock(ctx context.Context, courseID uuid.UUID, fn func() error) error {
	unlock, err := s.locker.Lock(ctx, courseID)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		s.logger.Error("course lock unavailable", zap.Stringer("course_id", courseID), zap.Error(err))
		return fmt.Errorf("%w: lock course %s: %w", core.ErrStoreFailure, courseID, err)
	}
	defer unlock()
	return fn()
}

func (s *CourseService) commit(ctx context.Context, changes core.ChangeSet) error {
	if changes.Empty() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.repo.Commit(ctx, changes); err != nil {
		s.logger.Error("commit failed",
			zap.Int("new_courses", len(changes.NewCourses)),
			zap.Int("courses", len(changes.Courses)),
			zap.Int("new_lessons", len(changes.NewLessons)),
			zap.Int("lessons", len(changes.Lessons)),
			zap.Error(err),
		)
		return storeError(err)
	}
	return nil
}

// storeError passes taxonomy errors through and classifies everything else as a store failure.
func storeError(err error) error {
	switch {
	case errors.Is(err, core.ErrNotFound),
		errors.Is(err, core.ErrConflict),
		errors.Is(err, core.ErrValidation),
		errors.Is(err, core.ErrInvalidPageToken),
		errors.Is(err, core.ErrStoreFailure),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %w", core.ErrStoreFailure, err)
	}
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", core.ErrValidation, field)
	}
	return nil
}
