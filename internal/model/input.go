package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Requirement type discriminators accepted in scenario files.
const (
	RequirementCourseTimeSlot  = "courseTimeSlot"
	RequirementCourseTeacher   = "courseTeacher"
	RequirementSectionTimeSlot = "sectionTimeSlot"
)

type CourseInput struct {
	Code     string
	Name     string
	Duration int
}

type TeacherInput struct {
	Id   string
	Name string
}

type SectionInput struct {
	Id       string
	Course   string
	Teacher  string
	Day      string
	Start    string
	Duration int
}

type RequirementInput struct {
	Type    string
	Course  string
	Teacher string
	Section string
	Day     string
	Start   string
}

type ScenarioInput struct {
	Courses      []CourseInput
	Teachers     []TeacherInput
	Sections     []SectionInput
	Requirements []RequirementInput
}

func InputFromJson(file string) (ScenarioInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ScenarioInput{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ScenarioInput{}, err
	}

	var input ScenarioInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ScenarioInput{}, err
	}

	return input, nil
}

func (in CourseInput) ToCourse() Course {
	return Course{
		Code:            in.Code,
		Name:            in.Name,
		DurationMinutes: in.Duration,
	}
}

func (in TeacherInput) ToTeacher() Teacher {
	return Teacher{
		ID:   in.Id,
		Name: in.Name,
	}
}

func (in SectionInput) ToSection() (Section, error) {
	slot, err := parseSlot(in.Day, in.Start, in.Duration)
	if err != nil {
		return Section{}, fmt.Errorf("section %s: %w", in.Id, err)
	}
	return Section{
		ID:         in.Id,
		CourseCode: in.Course,
		TeacherID:  in.Teacher,
		Slot:       slot,
	}, nil
}

func (in RequirementInput) ToRequirement() (Requirement, error) {
	slot, err := parseSlot(in.Day, in.Start, 0)
	if err != nil {
		return nil, fmt.Errorf("%s requirement: %w", in.Type, err)
	}

	switch in.Type {
	case RequirementCourseTimeSlot:
		return CourseTimeSlotRequirement{CourseCode: in.Course, Slot: slot}, nil
	case RequirementCourseTeacher:
		return CourseTeacherRequirement{CourseCode: in.Course, TeacherID: in.Teacher}, nil
	case RequirementSectionTimeSlot:
		return SectionTimeSlotRequirement{SectionID: in.Section, Slot: slot}, nil
	default:
		return nil, fmt.Errorf("%q is not a valid requirement type", in.Type)
	}
}

func parseSlot(day, start string, duration int) (TimeSlot, error) {
	parsedDay, err := ParseDay(day)
	if err != nil {
		return TimeSlot{}, err
	}

	slot := NewTimeSlot(duration).WithDay(parsedDay)
	if start != "" {
		hour, minute, err := ParseClock(start)
		if err != nil {
			return TimeSlot{}, err
		}
		slot = slot.WithStart(hour, minute)
	}
	return slot, nil
}
