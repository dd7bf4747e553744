package model

import "fmt"

// Course is a named unit of teaching. DurationMinutes is the default length
// of its sections.
type Course struct {
	Code            string
	Name            string
	DurationMinutes int
}

// Teacher references the courses it teaches by code; the scheduler's
// registries resolve codes back to Course values.
type Teacher struct {
	ID      string
	Name    string
	Courses []string
}

// Section ties a course to a teacher through id references and carries the
// slot it is (or will be) taught in. Completing a section's time during
// scheduling yields a new Section value with the same id.
type Section struct {
	ID         string
	CourseCode string
	TeacherID  string
	Slot       TimeSlot
}

func (s Section) WithSlot(slot TimeSlot) Section {
	s.Slot = slot
	return s
}

// Label is the canonical description a PQ-tree leaf carries for this
// section. The scheduler maps frontier entries back to sections by exact
// match on this string.
func (s Section) Label(teacherName string) string {
	return fmt.Sprintf("%s (%s, %s)", s.CourseCode, teacherName, s.Slot)
}
