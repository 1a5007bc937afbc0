package db

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/eslsoft/curriculum/internal/adapter/db/ent/generated"
	entcourse "github.com/eslsoft/curriculum/internal/adapter/db/ent/generated/course"
	entlesson "github.com/eslsoft/curriculum/internal/adapter/db/ent/generated/lesson"
	"github.com/eslsoft/curriculum/internal/core"
)

// CourseRepository persists courses and lessons using Ent.
type CourseRepository struct {
	client *entgenerated.Client
}

// NewCourseRepository constructs an Ent-backed course repository.
func NewCourseRepository(client *entgenerated.Client) *CourseRepository {
	return &CourseRepository{client: client}
}

var _ core.CourseRepository = (*CourseRepository)(nil)

// GetCourse fetches a course by id, tombstoned or not.
func (r *CourseRepository) GetCourse(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	row, err := r.client.Course.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, fmt.Errorf("%w: course %s", core.ErrNotFound, id)
		}
		return nil, err
	}
	course := toDomainCourse(row)
	return &course, nil
}

// GetLesson fetches a lesson by id, tombstoned or not.
func (r *CourseRepository) GetLesson(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
	row, err := r.client.Lesson.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, fmt.Errorf("%w: lesson %s", core.ErrNotFound, id)
		}
		return nil, err
	}
	lesson := toDomainLesson(row)
	return &lesson, nil
}

// ListActiveLessons returns the non-deleted lessons of a course ordered by position.
func (r *CourseRepository) ListActiveLessons(ctx context.Context, courseID uuid.UUID) ([]core.Lesson, error) {
	rows, err := r.activeLessons(courseID).
		Order(entlesson.ByPosition(), entlesson.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row *entgenerated.Lesson, _ int) core.Lesson {
		return toDomainLesson(row)
	}), nil
}

// CountActiveLessons counts the non-deleted lessons of a course.
func (r *CourseRepository) CountActiveLessons(ctx context.Context, courseID uuid.UUID) (int, error) {
	return r.activeLessons(courseID).Count(ctx)
}

// ListCourses retrieves live courses matching the supplied filter, newest first.
func (r *CourseRepository) ListCourses(ctx context.Context, filter core.CourseListFilter) (*core.CoursePage, error) {
	offset, err := parseOffsetToken(filter.PageToken)
	if err != nil {
		return nil, err
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	q := r.client.Course.Query().
		Where(entcourse.IsDeleted(false))

	if len(filter.Statuses) > 0 {
		statuses := lo.Map(filter.Statuses, func(s core.CourseStatus, _ int) int {
			return int(s)
		})
		q = q.Where(entcourse.StatusIn(statuses...))
	}

	if query := strings.TrimSpace(filter.Query); query != "" {
		q = q.Where(entcourse.TitleContainsFold(query))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := q.
		Order(entcourse.ByCreatedAt(sql.OrderDesc()), entcourse.ByID()).
		Offset(offset).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, err
	}

	nextToken := ""
	if offset+len(rows) < total {
		nextToken = strconv.Itoa(offset + len(rows))
	}

	return &core.CoursePage{
		Courses: lo.Map(rows, func(row *entgenerated.Course, _ int) core.Course {
			return toDomainCourse(row)
		}),
		TotalCount:    total,
		NextPageToken: nextToken,
	}, nil
}

// Commit persists every row of the change set in a single transaction.
func (r *CourseRepository) Commit(ctx context.Context, changes core.ChangeSet) error {
	if changes.Empty() {
		return nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	if err := applyChanges(ctx, tx, changes); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func applyChanges(ctx context.Context, tx *entgenerated.Tx, changes core.ChangeSet) error {
	if len(changes.NewCourses) > 0 {
		builders := lo.Map(changes.NewCourses, func(c core.Course, _ int) *entgenerated.CourseCreate {
			return tx.Course.Create().
				SetID(c.ID).
				SetTitle(c.Title).
				SetStatus(int(c.Status)).
				SetIsDeleted(c.IsDeleted).
				SetCreatedAt(c.CreatedAt).
				SetUpdatedAt(c.UpdatedAt)
		})
		if err := tx.Course.CreateBulk(builders...).Exec(ctx); err != nil {
			return fmt.Errorf("insert courses: %w", err)
		}
	}

	for _, c := range changes.Courses {
		err := tx.Course.UpdateOneID(c.ID).
			SetTitle(c.Title).
			SetStatus(int(c.Status)).
			SetIsDeleted(c.IsDeleted).
			SetUpdatedAt(c.UpdatedAt).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("update course %s: %w", c.ID, mapNotFound(err))
		}
	}

	if len(changes.NewLessons) > 0 {
		builders := lo.Map(changes.NewLessons, func(l core.Lesson, _ int) *entgenerated.LessonCreate {
			return tx.Lesson.Create().
				SetID(l.ID).
				SetCourseID(l.CourseID).
				SetTitle(l.Title).
				SetPosition(l.Order).
				SetIsDeleted(l.IsDeleted).
				SetCreatedAt(l.CreatedAt).
				SetUpdatedAt(l.UpdatedAt)
		})
		if err := tx.Lesson.CreateBulk(builders...).Exec(ctx); err != nil {
			return fmt.Errorf("insert lessons: %w", err)
		}
	}

	for _, l := range changes.Lessons {
		err := tx.Lesson.UpdateOneID(l.ID).
			SetTitle(l.Title).
			SetPosition(l.Order).
			SetIsDeleted(l.IsDeleted).
			SetUpdatedAt(l.UpdatedAt).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("update lesson %s: %w", l.ID, mapNotFound(err))
		}
	}

	return nil
}

func (r *CourseRepository) activeLessons(courseID uuid.UUID) *entgenerated.LessonQuery {
	return r.client.Lesson.Query().
		Where(
			entlesson.CourseID(courseID),
			entlesson.IsDeleted(false),
		)
}

func mapNotFound(err error) error {
	if entgenerated.IsNotFound(err) {
		return core.ErrNotFound
	}
	return err
}

func toDomainCourse(row *entgenerated.Course) core.Course {
	return core.Course{
		ID:        row.ID,
		Title:     row.Title,
		Status:    core.CourseStatus(row.Status),
		IsDeleted: row.IsDeleted,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func toDomainLesson(row *entgenerated.Lesson) core.Lesson {
	return core.Lesson{
		ID:        row.ID,
		CourseID:  row.CourseID,
		Title:     row.Title,
		Order:     row.Position,
		IsDeleted: row.IsDeleted,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func parseOffsetToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidPageToken, token)
	}
	return offset, nil
}
