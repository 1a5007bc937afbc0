package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lesson is a positioned content unit belonging to a course.
type Lesson struct {
	ID        uuid.UUID
	CourseID  uuid.UUID
	Title     string
	Order     int
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateLessonParams holds the input required to append a lesson to a course.
type CreateLessonParams struct {
	CourseID uuid.UUID
	Title    string
}

// UpdateLessonParams holds the input required to edit a lesson's title and position.
type UpdateLessonParams struct {
	ID    uuid.UUID
	Title string
	Order int
}

// NewLesson builds an active lesson at the given position.
func NewLesson(courseID uuid.UUID, title string, order int, now time.Time) Lesson {
	return Lesson{
		ID:        uuid.New(),
		CourseID:  courseID,
		Title:     strings.TrimSpace(title),
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
