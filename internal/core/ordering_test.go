package core

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
)

var baseTime = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func lessonsWithOrders(courseID uuid.UUID, orders ...int) []Lesson {
	lessons := make([]Lesson, 0, len(orders))
	for i, order := range orders {
		lessons = append(lessons, Lesson{
			ID:        uuid.New(),
			CourseID:  courseID,
			Title:     "lesson",
			Order:     order,
			CreatedAt: baseTime.Add(time.Duration(i) * time.Minute),
			UpdatedAt: baseTime.Add(time.Duration(i) * time.Minute),
		})
	}
	return lessons
}

func placementOrders(placements []Placement) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(placements))
	for _, p := range placements {
		out[p.LessonID] = p.Order
	}
	return out
}

func TestNextOrderForInsert(t *testing.T) {
	courseID := uuid.New()

	if got := NextOrderForInsert(nil); got != 1 {
		t.Fatalf("expected 1 for empty course, got %d", got)
	}

	lessons := lessonsWithOrders(courseID, 1, 2, 3)
	if got := NextOrderForInsert(lessons); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}

	lessons[2].IsDeleted = true
	if got := NextOrderForInsert(lessons); got != 3 {
		t.Fatalf("expected tombstoned lesson to be ignored, got %d", got)
	}
}

func TestRenumber_DeleteMiddleLesson(t *testing.T) {
	courseID := uuid.New()
	lessons := lessonsWithOrders(courseID, 1, 2, 3)
	a, b, c := lessons[0], lessons[1], lessons[2]

	placements := Renumber(b.ID, lessons)
	if len(placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(placements))
	}
	orders := placementOrders(placements)
	if orders[a.ID] != 1 || orders[c.ID] != 2 {
		t.Fatalf("expected [A:1, C:2], got %v", orders)
	}
	if _, ok := orders[b.ID]; ok {
		t.Fatal("removed lesson must not receive a placement")
	}
}

func TestRenumber_PreservesRelativeOrder(t *testing.T) {
	courseID := uuid.New()
	lessons := lessonsWithOrders(courseID, 5, 1, 3, 2, 4)

	removed := lessons[2] // order 3
	placements := Renumber(removed.ID, lessons)

	want := map[int]int{1: 1, 2: 2, 4: 3, 5: 4}
	for _, l := range lessons {
		if l.ID == removed.ID {
			continue
		}
		got := placementOrders(placements)[l.ID]
		if got != want[l.Order] {
			t.Fatalf("lesson at %d moved to %d, want %d", l.Order, got, want[l.Order])
		}
	}
}

func TestRenumber_EmptyCourse(t *testing.T) {
	courseID := uuid.New()
	lessons := lessonsWithOrders(courseID, 1)

	if placements := Renumber(lessons[0].ID, lessons); len(placements) != 0 {
		t.Fatalf("expected no placements, got %v", placements)
	}
	if placements := Renumber(uuid.New(), nil); len(placements) != 0 {
		t.Fatalf("expected no placements for empty set, got %v", placements)
	}
}

func TestValidateOrderAssignment(t *testing.T) {
	courseID := uuid.New()
	lessons := lessonsWithOrders(courseID, 1, 2)
	a, b := lessons[0], lessons[1]

	err := ValidateOrderAssignment(courseID, 1, b.ID, lessons)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	if err := ValidateOrderAssignment(courseID, 2, b.ID, lessons); err != nil {
		t.Fatalf("keeping own order should be allowed, got %v", err)
	}

	if err := ValidateOrderAssignment(courseID, 0, a.ID, lessons); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for non-positive order, got %v", err)
	}

	lessons[0].IsDeleted = true
	if err := ValidateOrderAssignment(courseID, 1, b.ID, lessons); err != nil {
		t.Fatalf("tombstoned lessons must not conflict, got %v", err)
	}

	other := lessonsWithOrders(uuid.New(), 1)
	if err := ValidateOrderAssignment(courseID, 1, b.ID, other); err != nil {
		t.Fatalf("lessons of other courses must not conflict, got %v", err)
	}
}

func TestMove(t *testing.T) {
	courseID := uuid.New()
	lessons := lessonsWithOrders(courseID, 1, 2)
	a, b := lessons[0], lessons[1]

	placements, err := Move(a.ID, DirectionDown, lessons)
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	orders := placementOrders(placements)
	if orders[b.ID] != 1 || orders[a.ID] != 2 {
		t.Fatalf("expected [B:1, A:2], got %v", orders)
	}

	placements, err = Move(b.ID, DirectionUp, lessons)
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	orders = placementOrders(placements)
	if orders[b.ID] != 1 || orders[a.ID] != 2 {
		t.Fatalf("expected [B:1, A:2], got %v", orders)
	}
}

func TestMove_Boundaries(t *testing.T) {
	courseID := uuid.New()
	lessons := lessonsWithOrders(courseID, 1, 2, 3)

	cases := []struct {
		name      string
		lesson    Lesson
		direction Direction
	}{
		{name: "first up", lesson: lessons[0], direction: DirectionUp},
		{name: "last down", lesson: lessons[2], direction: DirectionDown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Move(tc.lesson.ID, tc.direction, lessons)
			if !errors.Is(err, ErrDeclined) {
				t.Fatalf("expected ErrDeclined, got %v", err)
			}
		})
	}

	single := lessonsWithOrders(courseID, 1)
	for _, dir := range []Direction{DirectionUp, DirectionDown} {
		if _, err := Move(single[0].ID, dir, single); !errors.Is(err, ErrDeclined) {
			t.Fatalf("expected single lesson %s to be declined, got %v", dir, err)
		}
	}
}

func TestMove_UnknownLessonAndDirection(t *testing.T) {
	courseID := uuid.New()
	lessons := lessonsWithOrders(courseID, 1, 2)

	if _, err := Move(uuid.New(), DirectionUp, lessons); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := Move(lessons[0].ID, DirectionUnspecified, lessons); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestMove_RepairsGapsAndTiesByCreatedAt(t *testing.T) {
	courseID := uuid.New()
	// Corrupted input: duplicate order 2 and a gap at 3.
	lessons := lessonsWithOrders(courseID, 1, 2, 2, 4)
	first, olderTwin, newerTwin, last := lessons[0], lessons[1], lessons[2], lessons[3]

	placements, err := Move(last.ID, DirectionUp, lessons)
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	orders := placementOrders(placements)
	want := map[uuid.UUID]int{first.ID: 1, olderTwin.ID: 2, last.ID: 3, newerTwin.ID: 4}
	for id, order := range want {
		if orders[id] != order {
			t.Fatalf("lesson %s got order %d, want %d (all: %v)", id, orders[id], order, orders)
		}
	}
}

func TestApplyPlacements(t *testing.T) {
	courseID := uuid.New()
	lessons := lessonsWithOrders(courseID, 1, 2, 3)
	now := baseTime.Add(time.Hour)

	placements, err := Move(lessons[1].ID, DirectionDown, lessons)
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	all, changed := ApplyPlacements(lessons, placements, now)
	if len(all) != 3 {
		t.Fatalf("expected 3 lessons, got %d", len(all))
	}
	if len(changed) != 2 {
		t.Fatalf("expected only the swapped pair to change, got %d", len(changed))
	}
	for _, l := range changed {
		if !l.UpdatedAt.Equal(now) {
			t.Fatalf("expected changed lesson to be stamped, got %v", l.UpdatedAt)
		}
	}
	if all[1].ID != lessons[2].ID || all[2].ID != lessons[1].ID {
		t.Fatalf("unexpected arrangement %v", all)
	}
	if lessons[1].Order != 2 {
		t.Fatal("input lessons must not be mutated")
	}
}

func TestOrderingStaysDenseUnderRandomOperations(t *testing.T) {
	courseID := uuid.New()
	rng := rand.New(rand.NewSource(42))
	var active []Lesson
	now := baseTime

	for step := 0; step < 500; step++ {
		now = now.Add(time.Second)
		op := rng.Intn(3)
		switch {
		case op == 0 || len(active) == 0:
			active = append(active, NewLesson(courseID, "generated", NextOrderForInsert(active), now))
		case op == 1:
			victim := active[rng.Intn(len(active))]
			active, _ = ApplyPlacements(active, Renumber(victim.ID, active), now)
		default:
			target := active[rng.Intn(len(active))]
			dir := DirectionUp
			if rng.Intn(2) == 0 {
				dir = DirectionDown
			}
			placements, err := Move(target.ID, dir, active)
			if err != nil {
				if !errors.Is(err, ErrDeclined) {
					t.Fatalf("step %d: unexpected error %v", step, err)
				}
				continue
			}
			active, _ = ApplyPlacements(active, placements, now)
		}

		if !IsDense(active) {
			t.Fatalf("step %d: orders are not dense: %v", step, active)
		}
	}
}

