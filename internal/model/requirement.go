package model

import (
	"fmt"

	"github.com/samber/lo"
)

// Requirement is a read-only predicate over a candidate schedule. The
// scheduler returns the first candidate satisfying every registered
// requirement, falling back to the first valid candidate otherwise.
type Requirement interface {
	Satisfied(schedule Schedule) bool
	Description() string
}

// CourseTimeSlotRequirement pins a course to a day and, when the slot
// carries a start, to that start time.
type CourseTimeSlotRequirement struct {
	CourseCode string
	Slot       TimeSlot
}

func (r CourseTimeSlotRequirement) Satisfied(schedule Schedule) bool {
	return lo.SomeBy(schedule.SectionsForCourse(r.CourseCode), func(section Section) bool {
		return slotMatches(r.Slot, section.Slot)
	})
}

func (r CourseTimeSlotRequirement) Description() string {
	return fmt.Sprintf("Course %s must be in time slot %v", r.CourseCode, r.Slot)
}

// CourseTeacherRequirement pins a course to a teacher.
type CourseTeacherRequirement struct {
	CourseCode string
	TeacherID  string
}

func (r CourseTeacherRequirement) Satisfied(schedule Schedule) bool {
	return lo.SomeBy(schedule.SectionsForCourse(r.CourseCode), func(section Section) bool {
		return section.TeacherID == r.TeacherID
	})
}

func (r CourseTeacherRequirement) Description() string {
	return fmt.Sprintf("Course %s must be taught by teacher %s", r.CourseCode, r.TeacherID)
}

// SectionTimeSlotRequirement pins one section, matched by id, to a day and
// optionally a start time. The scheduler also consults these pins during
// time allocation, before requirements are evaluated.
type SectionTimeSlotRequirement struct {
	SectionID string
	Slot      TimeSlot
}

func (r SectionTimeSlotRequirement) Satisfied(schedule Schedule) bool {
	return lo.SomeBy(schedule.Sections, func(section Section) bool {
		return section.ID == r.SectionID && slotMatches(r.Slot, section.Slot)
	})
}

func (r SectionTimeSlotRequirement) Description() string {
	return fmt.Sprintf("Section %s must be in time slot %v", r.SectionID, r.Slot)
}

// slotMatches compares a required slot against a placed one. A requirement
// without a day matches any day; one without a start matches any start on
// the required day.
func slotMatches(required, placed TimeSlot) bool {
	if required.HasDay() && required.Day() != placed.Day() {
		return false
	}
	if required.HasStart() && required.StartMinutes() != placed.StartMinutes() {
		return false
	}
	return true
}
