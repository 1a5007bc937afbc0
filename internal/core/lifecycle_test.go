package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPublish(t *testing.T) {
	now := baseTime.Add(time.Hour)

	course := NewCourse("Intro", baseTime)
	if err := Publish(&course, 0, now); !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	} else if !strings.Contains(err.Error(), "at least one active lesson") {
		t.Fatalf("expected descriptive reason, got %q", err.Error())
	}
	if course.Status != CourseStatusDraft || !course.UpdatedAt.Equal(baseTime) {
		t.Fatalf("declined publish must not mutate the course: %#v", course)
	}

	if err := Publish(&course, 1, now); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if course.Status != CourseStatusPublished {
		t.Fatalf("expected published, got %v", course.Status)
	}
	if !course.UpdatedAt.Equal(now) {
		t.Fatalf("expected UpdatedAt %v, got %v", now, course.UpdatedAt)
	}
}

func TestUnpublish(t *testing.T) {
	course := NewCourse("Intro", baseTime)
	course.Status = CourseStatusPublished

	if err := Unpublish(&course, baseTime.Add(time.Minute)); err != nil {
		t.Fatalf("Unpublish() error = %v", err)
	}
	if course.Status != CourseStatusDraft {
		t.Fatalf("expected draft, got %v", course.Status)
	}

	course.IsDeleted = true
	if err := Unpublish(&course, baseTime); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted course, got %v", err)
	}
	if err := Publish(&course, 3, baseTime); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted course, got %v", err)
	}
}

func TestTombstones(t *testing.T) {
	now := baseTime.Add(time.Hour)

	course := NewCourse("Intro", baseTime)
	course.Status = CourseStatusPublished
	if err := TombstoneCourse(&course, now); err != nil {
		t.Fatalf("TombstoneCourse() error = %v", err)
	}
	if !course.IsDeleted || course.Status != CourseStatusPublished {
		t.Fatalf("tombstone must only flip the deleted flag: %#v", course)
	}
	if err := TombstoneCourse(&course, now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	lesson := NewLesson(course.ID, "Welcome", 3, baseTime)
	if err := TombstoneLesson(&lesson, now); err != nil {
		t.Fatalf("TombstoneLesson() error = %v", err)
	}
	if !lesson.IsDeleted || lesson.Order != 3 {
		t.Fatalf("tombstoned lesson must keep its order: %#v", lesson)
	}
	if err := TombstoneLesson(&lesson, now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
