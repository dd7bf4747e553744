package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hassan-31x/ds2-project/internal/model"
)

func newTestScheduler(t *testing.T) Scheduler {
	t.Helper()
	return New(Options{})
}

func registerTwoSectionCourse(t *testing.T, engine Scheduler) {
	t.Helper()
	assert.Nil(t, engine.AddCourse(model.Course{Code: "CS101", Name: "Computer Science", DurationMinutes: 60}))
	assert.Nil(t, engine.AddTeacher(model.Teacher{ID: "t1", Name: "Miss Maria"}))
	assert.Nil(t, engine.AddTeacher(model.Teacher{ID: "t2", Name: "Sir Qasim"}))
	assert.Nil(t, engine.AddSection(section("A", "CS101", "t1", model.NewTimeSlot(60))))
	assert.Nil(t, engine.AddSection(section("B", "CS101", "t2", model.NewTimeSlot(60))))
}

func TestRegistration(t *testing.T) {
	t.Run("Duplicates are rejected", func(t *testing.T) {
		// Arrange
		engine := newTestScheduler(t)
		registerTwoSectionCourse(t, engine)

		// Act & Assert
		assert.ErrorIs(t, engine.AddCourse(model.Course{Code: "CS101"}), ErrDuplicateCourse)
		assert.ErrorIs(t, engine.AddTeacher(model.Teacher{ID: "t1"}), ErrDuplicateTeacher)
		assert.ErrorIs(t, engine.AddSection(section("A", "CS101", "t1", model.NewTimeSlot(60))), ErrDuplicateSection)
	})

	t.Run("Sections must reference registered entities", func(t *testing.T) {
		// Arrange
		engine := newTestScheduler(t)
		assert.Nil(t, engine.AddCourse(model.Course{Code: "CS101"}))
		assert.Nil(t, engine.AddTeacher(model.Teacher{ID: "t1"}))

		// Act & Assert
		assert.ErrorIs(t, engine.AddSection(section("A", "ENG101", "t1", model.NewTimeSlot(60))), ErrUnknownCourse)
		assert.ErrorIs(t, engine.AddSection(section("A", "CS101", "t9", model.NewTimeSlot(60))), ErrUnknownTeacher)
	})

	t.Run("Registering a section records the course on its teacher", func(t *testing.T) {
		// Arrange
		engine := newTestScheduler(t)
		registerTwoSectionCourse(t, engine)

		// Act
		teachers := engine.Teachers()

		// Assert
		assert.Len(t, teachers, 2)
		assert.Contains(t, teachers[0].Courses, "CS101")
		assert.Contains(t, teachers[1].Courses, "CS101")
	})
}

func TestGenerateSchedule(t *testing.T) {
	t.Run("Two unpinned sections spread across weekdays", func(t *testing.T) {
		// Arrange
		engine := newTestScheduler(t)
		registerTwoSectionCourse(t, engine)

		// Act
		satisfied := engine.GenerateSchedule()

		// Assert
		assert.True(t, satisfied)

		current, ok := engine.CurrentSchedule()
		assert.True(t, ok)
		assert.Len(t, current.Sections, 2)
		assert.False(t, current.HasConflicts())
		assert.NotEqual(t, current.Sections[0].Slot.Day(), current.Sections[1].Slot.Day())

		pool := engine.AllPossibleSchedules()
		assert.GreaterOrEqual(t, len(pool), 2)
		for _, candidate := range pool {
			assert.False(t, candidate.HasConflicts())
			assert.Len(t, candidate.Sections, 2)
		}
	})

	t.Run("Section pin holds across every candidate", func(t *testing.T) {
		// Arrange
		engine := newTestScheduler(t)
		registerTwoSectionCourse(t, engine)
		pin := model.SectionTimeSlotRequirement{
			SectionID: "A",
			Slot:      model.NewTimeSlotAt(model.Monday, 9, 0, 60),
		}
		engine.AddRequirement(pin)

		// Act
		satisfied := engine.GenerateSchedule()

		// Assert
		assert.True(t, satisfied)
		for _, candidate := range engine.AllPossibleSchedules() {
			placed := placementOf(t, candidate, "A")
			assert.Equal(t, model.Monday, placed.Day())
			assert.Equal(t, 9*60, placed.StartMinutes())
			assert.True(t, pin.Satisfied(candidate))
		}
	})

	t.Run("Colliding pins on one teacher produce no candidates", func(t *testing.T) {
		// Arrange
		engine := newTestScheduler(t)
		assert.Nil(t, engine.AddCourse(model.Course{Code: "CS101"}))
		assert.Nil(t, engine.AddCourse(model.Course{Code: "MATH101"}))
		assert.Nil(t, engine.AddTeacher(model.Teacher{ID: "t1", Name: "Miss Maria"}))
		assert.Nil(t, engine.AddSection(section("A", "CS101", "t1", model.NewTimeSlot(60))))
		assert.Nil(t, engine.AddSection(section("B", "MATH101", "t1", model.NewTimeSlot(60))))
		engine.AddRequirement(model.SectionTimeSlotRequirement{
			SectionID: "A",
			Slot:      model.NewTimeSlotAt(model.Monday, 9, 0, 60),
		})
		engine.AddRequirement(model.SectionTimeSlotRequirement{
			SectionID: "B",
			Slot:      model.NewTimeSlotAt(model.Monday, 9, 30, 60),
		})

		// Act
		satisfied := engine.GenerateSchedule()

		// Assert
		assert.False(t, satisfied)
		assert.Empty(t, engine.AllPossibleSchedules())
		_, ok := engine.CurrentSchedule()
		assert.False(t, ok)
	})

	t.Run("Empty section list produces nothing", func(t *testing.T) {
		// Arrange
		engine := newTestScheduler(t)

		// Act
		satisfied := engine.GenerateSchedule()

		// Assert
		assert.False(t, satisfied)
		assert.Empty(t, engine.AllPossibleSchedules())
		_, ok := engine.CurrentSchedule()
		assert.False(t, ok)
	})

	t.Run("Unsatisfiable requirement falls back to the first valid candidate", func(t *testing.T) {
		// Arrange
		engine := newTestScheduler(t)
		registerTwoSectionCourse(t, engine)
		engine.AddRequirement(model.CourseTeacherRequirement{
			CourseCode: "CS101",
			TeacherID:  "t9",
		})

		// Act
		satisfied := engine.GenerateSchedule()

		// Assert
		assert.False(t, satisfied)
		current, ok := engine.CurrentSchedule()
		assert.True(t, ok)
		assert.Equal(t, engine.AllPossibleSchedules()[0].ID, current.ID)
	})

	t.Run("Re-running over unchanged registrations yields an equivalent pool", func(t *testing.T) {
		// Arrange
		engine := newTestScheduler(t)
		registerTwoSectionCourse(t, engine)

		// Act
		engine.GenerateSchedule()
		firstPool := engine.AllPossibleSchedules()
		engine.GenerateSchedule()
		secondPool := engine.AllPossibleSchedules()

		// Assert
		assert.Equal(t, len(firstPool), len(secondPool))
		for _, candidate := range firstPool {
			matched := false
			for _, other := range secondPool {
				if model.Equivalent(candidate, other) {
					matched = true
					break
				}
			}
			assert.True(t, matched, "candidate %v has no equivalent in the second pool", candidate.ID)
		}
	})

	t.Run("Section count beyond the bound fails the run", func(t *testing.T) {
		// Arrange
		engine := New(Options{MaxSections: 1})
		registerTwoSectionCourse(t, engine)

		// Act & Assert
		assert.False(t, engine.GenerateSchedule())
		assert.Empty(t, engine.AllPossibleSchedules())
	})
}

func TestBuildPQTree(t *testing.T) {
	// Arrange
	engine := newTestScheduler(t)
	assert.Nil(t, engine.AddCourse(model.Course{Code: "CS101"}))
	assert.Nil(t, engine.AddTeacher(model.Teacher{ID: "t1", Name: "Miss Maria"}))
	assert.Nil(t, engine.AddSection(section("A", "CS101", "t1", model.NewTimeSlotAt(model.Tuesday, 9, 0, 60))))
	assert.Nil(t, engine.AddSection(section("B", "CS101", "t1", model.NewTimeSlotAt(model.Monday, 8, 0, 60))))

	// Act
	frontiers := engine.BuildPQTree().Frontiers()

	// Assert: leaves carry canonical labels in time order, plus the reverse
	assert.Equal(t, [][]string{
		{"CS101 (Miss Maria, Mon 8:00 AM - 9:00 AM)", "CS101 (Miss Maria, Tue 9:00 AM - 10:00 AM)"},
		{"CS101 (Miss Maria, Tue 9:00 AM - 10:00 AM)", "CS101 (Miss Maria, Mon 8:00 AM - 9:00 AM)"},
	}, frontiers)
}

func TestClear(t *testing.T) {
	// Arrange
	engine := newTestScheduler(t)
	registerTwoSectionCourse(t, engine)
	engine.GenerateSchedule()

	// Act
	engine.Clear()

	// Assert
	assert.Empty(t, engine.Courses())
	assert.Empty(t, engine.Teachers())
	assert.Empty(t, engine.Sections())
	assert.Empty(t, engine.Requirements())
	assert.Empty(t, engine.AllPossibleSchedules())
	_, ok := engine.CurrentSchedule()
	assert.False(t, ok)
	assert.False(t, engine.GenerateSchedule())
}

func TestRegisterScenario(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		// Arrange
		engine := newTestScheduler(t)
		input := model.ScenarioInput{
			Courses:  []model.CourseInput{{Code: "CS101", Name: "Computer Science", Duration: 60}},
			Teachers: []model.TeacherInput{{Id: "t1", Name: "Miss Maria"}, {Id: "t2", Name: "Sir Qasim"}},
			Sections: []model.SectionInput{
				{Id: "A", Course: "CS101", Teacher: "t1", Duration: 60},
				{Id: "B", Course: "CS101", Teacher: "t2", Duration: 60},
			},
			Requirements: []model.RequirementInput{
				{Type: model.RequirementCourseTeacher, Course: "CS101", Teacher: "t1"},
			},
		}

		// Act
		err := RegisterScenario(engine, input)

		// Assert
		assert.Nil(t, err)
		assert.Len(t, engine.Sections(), 2)
		assert.Len(t, engine.Requirements(), 1)
		assert.True(t, engine.GenerateSchedule())
	})

	t.Run("Broken references surface as errors", func(t *testing.T) {
		// Arrange
		engine := newTestScheduler(t)
		input := model.ScenarioInput{
			Sections: []model.SectionInput{{Id: "A", Course: "CS101", Teacher: "t1", Duration: 60}},
		}

		// Act
		err := RegisterScenario(engine, input)

		// Assert
		assert.True(t, errors.Is(err, ErrUnknownCourse))
	})
}
