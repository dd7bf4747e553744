package scheduler

import (
	"fmt"

	"github.com/hassan-31x/ds2-project/internal/model"
)

// RegisterScenario loads every entity and requirement of a parsed scenario
// into the scheduler, in input order.
func RegisterScenario(s Scheduler, input model.ScenarioInput) error {
	for _, course := range input.Courses {
		if err := s.AddCourse(course.ToCourse()); err != nil {
			return fmt.Errorf("cannot register course: %w", err)
		}
	}
	for _, teacher := range input.Teachers {
		if err := s.AddTeacher(teacher.ToTeacher()); err != nil {
			return fmt.Errorf("cannot register teacher: %w", err)
		}
	}
	for _, sectionInput := range input.Sections {
		section, err := sectionInput.ToSection()
		if err != nil {
			return err
		}
		if err := s.AddSection(section); err != nil {
			return fmt.Errorf("cannot register section: %w", err)
		}
	}
	for _, requirementInput := range input.Requirements {
		requirement, err := requirementInput.ToRequirement()
		if err != nil {
			return err
		}
		s.AddRequirement(requirement)
	}
	return nil
}
