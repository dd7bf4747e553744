package main

import (
	"fmt"
	"log"
	"math/rand"
	"slices"
	"strings"

	"github.com/hassan-31x/ds2-project/internal/config"
	"github.com/hassan-31x/ds2-project/internal/logging"
	"github.com/hassan-31x/ds2-project/internal/model"
	"github.com/hassan-31x/ds2-project/internal/scheduler"
)

// Demo driver over the sample data set: three courses, five teachers, six
// sections, a couple of pins.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	logger := logging.New(cfg.Environment)
	defer logger.Sync()

	engine := scheduler.New(scheduler.Options{
		Logger:      logger,
		MaxSections: cfg.MaxSections,
	})

	if err := registerDemoData(engine); err != nil {
		log.Fatalf("cannot register demo data: %v", err)
	}

	engine.AddRequirement(model.CourseTeacherRequirement{
		CourseCode: "MATH101",
		TeacherID:  "t1",
	})
	engine.AddRequirement(model.SectionTimeSlotRequirement{
		SectionID: "MATH101-A",
		Slot:      model.NewTimeSlotAt(model.Monday, 9, 0, 60),
	})

	satisfied := engine.GenerateSchedule()

	current, ok := engine.CurrentSchedule()
	if !ok {
		fmt.Println("No schedule could be generated")
		return
	}

	if satisfied {
		fmt.Println("Schedule satisfies all requirements:")
	} else {
		fmt.Println("Best available schedule (not all requirements satisfied):")
	}
	printSchedule(current)

	fmt.Printf("\nCandidate pool: %v schedules\n", len(engine.AllPossibleSchedules()))

	tree := engine.BuildPQTree()
	fmt.Println("\nAdmitted section orderings:")
	for _, frontier := range tree.Frontiers() {
		fmt.Printf("  %s\n", strings.Join(frontier, " -> "))
	}

	// A seeded reorder keeps the walk reproducible across runs.
	tree.Reorder(rand.New(rand.NewSource(cfg.Seed)))
	fmt.Printf("\nReordered arrangement:\n  %s\n", strings.Join(tree.Frontier(), " -> "))
}

func registerDemoData(engine scheduler.Scheduler) error {
	courses := []model.Course{
		{Code: "MATH101", Name: "Mathematics", DurationMinutes: 60},
		{Code: "CS101", Name: "Computer Science", DurationMinutes: 60},
		{Code: "ENG101", Name: "English", DurationMinutes: 60},
	}
	teachers := []model.Teacher{
		{ID: "t1", Name: "Miss Maria"},
		{ID: "t2", Name: "Sir Qasim"},
		{ID: "t3", Name: "Sir Salman"},
		{ID: "t4", Name: "Miss Hamna"},
		{ID: "t5", Name: "Miss Sara"},
	}
	sections := []model.Section{
		{ID: "MATH101-A", CourseCode: "MATH101", TeacherID: "t1", Slot: model.NewTimeSlotAt(model.Monday, 8, 0, 60)},
		{ID: "MATH101-B", CourseCode: "MATH101", TeacherID: "t2", Slot: model.NewTimeSlotAt(model.Tuesday, 9, 0, 60)},
		{ID: "CS101-A", CourseCode: "CS101", TeacherID: "t3", Slot: model.NewTimeSlotAt(model.Monday, 11, 0, 60)},
		{ID: "CS101-B", CourseCode: "CS101", TeacherID: "t1", Slot: model.NewTimeSlotAt(model.Monday, 13, 0, 60)},
		{ID: "ENG101-A", CourseCode: "ENG101", TeacherID: "t4", Slot: model.NewTimeSlot(60)},
		{ID: "ENG101-B", CourseCode: "ENG101", TeacherID: "t5", Slot: model.NewTimeSlot(90)},
	}

	for _, course := range courses {
		if err := engine.AddCourse(course); err != nil {
			return err
		}
	}
	for _, teacher := range teachers {
		if err := engine.AddTeacher(teacher); err != nil {
			return err
		}
	}
	for _, section := range sections {
		if err := engine.AddSection(section); err != nil {
			return err
		}
	}
	return nil
}

func printSchedule(schedule model.Schedule) {
	sections := slices.Clone(schedule.Sections)
	slices.SortStableFunc(sections, func(a, b model.Section) int {
		if a.Slot.Day() != b.Slot.Day() {
			return int(a.Slot.Day()) - int(b.Slot.Day())
		}
		return a.Slot.StartMinutes() - b.Slot.StartMinutes()
	})

	for _, section := range sections {
		fmt.Printf("  %-10s %-8s teacher=%-3s %v\n", section.ID, section.CourseCode, section.TeacherID, section.Slot)
	}
}
