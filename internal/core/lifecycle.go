package core

import (
	"fmt"
	"time"
)

// ReasonNoActiveLessons is reported when publishing a course without active lessons.
const ReasonNoActiveLessons = "course must have at least one active lesson to be published"

// Publish moves a course to Published. It is declined unless the course has at least one
// active lesson; the course is left untouched on any error.
func Publish(course *Course, activeLessons int, now time.Time) error {
	if course.IsDeleted {
		return fmt.Errorf("%w: course %s", ErrNotFound, course.ID)
	}
	if activeLessons < 1 {
		return fmt.Errorf("%w: %s", ErrDeclined, ReasonNoActiveLessons)
	}
	course.Status = CourseStatusPublished
	course.UpdatedAt = now
	return nil
}

// Unpublish reverts a course to Draft. Any live course may revert.
func Unpublish(course *Course, now time.Time) error {
	if course.IsDeleted {
		return fmt.Errorf("%w: course %s", ErrNotFound, course.ID)
	}
	course.Status = CourseStatusDraft
	course.UpdatedAt = now
	return nil
}

// TombstoneCourse marks a course deleted. Its lessons are not touched.
func TombstoneCourse(course *Course, now time.Time) error {
	if course.IsDeleted {
		return fmt.Errorf("%w: course %s", ErrNotFound, course.ID)
	}
	course.IsDeleted = true
	course.UpdatedAt = now
	return nil
}

// TombstoneLesson marks a lesson deleted and freezes its last position.
func TombstoneLesson(lesson *Lesson, now time.Time) error {
	if lesson.IsDeleted {
		return fmt.Errorf("%w: lesson %s", ErrNotFound, lesson.ID)
	}
	lesson.IsDeleted = true
	lesson.UpdatedAt = now
	return nil
}
