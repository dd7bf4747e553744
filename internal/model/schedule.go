package model

import (
	"github.com/google/uuid"
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// Schedule is one candidate assignment: an ordered set of sections with
// completed time slots. Candidates are assembled fresh by each generation
// step and never mutated afterwards.
type Schedule struct {
	ID       string
	Sections []Section
}

func NewSchedule(sections []Section) Schedule {
	return Schedule{
		ID:       uuid.NewString(),
		Sections: sections,
	}
}

func (s Schedule) IsEmpty() bool {
	return len(s.Sections) == 0
}

func (s Schedule) SectionsForCourse(courseCode string) []Section {
	return lo.Filter(s.Sections, func(section Section, _ int) bool {
		return section.CourseCode == courseCode
	})
}

// HasConflicts reports whether two sections share a teacher and overlapping
// slots. Sections with unassigned day or time never register overlap.
func (s Schedule) HasConflicts() bool {
	for i := range s.Sections {
		for j := i + 1; j < len(s.Sections); j++ {
			if s.Sections[i].TeacherID != s.Sections[j].TeacherID {
				continue
			}
			if s.Sections[i].Slot.Overlaps(s.Sections[j].Slot) {
				return true
			}
		}
	}
	return false
}

// Equivalent reports whether two schedules describe the same placement:
// same section count and a perfect, order-independent matching on course
// code, teacher id, day and start time. The matching is computed as a
// largest bipartite matching between the two section sets.
func Equivalent(a, b Schedule) bool {
	if len(a.Sections) != len(b.Sections) {
		return false
	}
	if len(a.Sections) == 0 {
		return true
	}

	neighbors := func(leftAny any, rightAny any) (bool, error) {
		left := leftAny.(Section)
		right := rightAny.(Section)

		return left.CourseCode == right.CourseCode &&
			left.TeacherID == right.TeacherID &&
			left.Slot.Day() == right.Slot.Day() &&
			left.Slot.StartMinutes() == right.Slot.StartMinutes(), nil
	}

	leftAny := lo.Map(a.Sections, func(section Section, _ int) any { return section })
	rightAny := lo.Map(b.Sections, func(section Section, _ int) any { return section })

	graph, err := bipartitegraph.NewBipartiteGraph(leftAny, rightAny, neighbors)
	if err != nil {
		return false
	}

	return len(graph.LargestMatching()) == len(a.Sections)
}
