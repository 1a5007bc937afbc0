package core

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Direction is the requested movement of a lesson within its course.
type Direction int

const (
	DirectionUnspecified Direction = iota
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unspecified"
	}
}

// ReasonBoundary is reported when a move would leave the active range.
const ReasonBoundary = "boundary"

// Placement assigns a position to a lesson.
type Placement struct {
	LessonID uuid.UUID
	Order    int
}

// SortLessons orders lessons by position, breaking ties by creation time.
func SortLessons(lessons []Lesson) {
	slices.SortStableFunc(lessons, func(a, b Lesson) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

// NextOrderForInsert returns the position for a lesson appended to the active set.
func NextOrderForInsert(active []Lesson) int {
	orders := lo.FilterMap(active, func(l Lesson, _ int) (int, bool) {
		return l.Order, !l.IsDeleted
	})
	return lo.Max(orders) + 1
}

// Renumber drops removed from the active set and packs the survivors into 1..N,
// keeping their relative order.
func Renumber(removed uuid.UUID, active []Lesson) []Placement {
	survivors := lo.Filter(active, func(l Lesson, _ int) bool {
		return l.ID != removed && !l.IsDeleted
	})
	SortLessons(survivors)
	return densePlacements(survivors)
}

// ValidateOrderAssignment rejects candidate when another active lesson of the course holds it.
// Conflicts are reported, never resolved.
func ValidateOrderAssignment(courseID uuid.UUID, candidate int, excluding uuid.UUID, active []Lesson) error {
	if candidate < 1 {
		return fmt.Errorf("%w: order must be positive, got %d", ErrValidation, candidate)
	}
	holder, taken := lo.Find(active, func(l Lesson) bool {
		return l.CourseID == courseID && l.ID != excluding && !l.IsDeleted && l.Order == candidate
	})
	if taken {
		return fmt.Errorf("%w: order %d is already in use for this course by lesson %s", ErrConflict, candidate, holder.ID)
	}
	return nil
}

// Move swaps a lesson with its neighbour in the given direction and recomputes
// every position from the list index, so any pre-existing gaps are closed.
func Move(lessonID uuid.UUID, direction Direction, active []Lesson) ([]Placement, error) {
	if direction != DirectionUp && direction != DirectionDown {
		return nil, fmt.Errorf("%w: unsupported direction %s", ErrValidation, direction)
	}

	sorted := lo.Filter(active, func(l Lesson, _ int) bool { return !l.IsDeleted })
	SortLessons(sorted)

	idx := slices.IndexFunc(sorted, func(l Lesson) bool { return l.ID == lessonID })
	if idx < 0 {
		return nil, fmt.Errorf("%w: lesson %s is not active", ErrNotFound, lessonID)
	}

	target := idx - 1
	if direction == DirectionDown {
		target = idx + 1
	}
	if target < 0 || target >= len(sorted) {
		return nil, fmt.Errorf("%w: %s", ErrDeclined, ReasonBoundary)
	}

	sorted[idx], sorted[target] = sorted[target], sorted[idx]
	return densePlacements(sorted), nil
}

// ApplyPlacements returns every lesson with its new position, sorted, and the subset whose
// position actually changed. Changed lessons have UpdatedAt set to now.
func ApplyPlacements(lessons []Lesson, placements []Placement, now time.Time) (all []Lesson, changed []Lesson) {
	positions := lo.SliceToMap(placements, func(p Placement) (uuid.UUID, int) {
		return p.LessonID, p.Order
	})

	for _, lesson := range lessons {
		order, ok := positions[lesson.ID]
		if !ok {
			continue
		}
		if lesson.Order != order {
			lesson.Order = order
			lesson.UpdatedAt = now
			changed = append(changed, lesson)
		}
		all = append(all, lesson)
	}

	SortLessons(all)
	return all, changed
}

// IsDense reports whether the active lessons occupy exactly 1..N.
func IsDense(lessons []Lesson) bool {
	active := lo.Filter(lessons, func(l Lesson, _ int) bool { return !l.IsDeleted })
	seen := make(map[int]struct{}, len(active))
	for _, l := range active {
		if l.Order < 1 || l.Order > len(active) {
			return false
		}
		if _, dup := seen[l.Order]; dup {
			return false
		}
		seen[l.Order] = struct{}{}
	}
	return true
}

func densePlacements(sorted []Lesson) []Placement {
	return lo.Map(sorted, func(l Lesson, i int) Placement {
		return Placement{LessonID: l.ID, Order: i + 1}
	})
}
