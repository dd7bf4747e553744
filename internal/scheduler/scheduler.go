// Package scheduler assigns sections to day/time slots. It enumerates the
// section orderings a precedence tree admits, packs each ordering greedily
// onto the week, and searches the resulting candidate pool for a schedule
// satisfying every registered requirement.
package scheduler

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/hassan-31x/ds2-project/internal/model"
	"github.com/hassan-31x/ds2-project/internal/pqtree"
)

var (
	ErrDuplicateCourse  = errors.New("course code already registered")
	ErrDuplicateTeacher = errors.New("teacher id already registered")
	ErrDuplicateSection = errors.New("section id already registered")
	ErrUnknownCourse    = errors.New("unknown course code")
	ErrUnknownTeacher   = errors.New("unknown teacher id")
)

// DefaultMaxSections bounds the section count a run accepts. Frontier
// enumeration grows factorially on P-nodes, so the cap keeps a run's latency
// finite even for hand-built trees.
const DefaultMaxSections = 12

type Scheduler interface {
	AddCourse(course model.Course) error
	AddTeacher(teacher model.Teacher) error
	AddSection(section model.Section) error
	AddRequirement(requirement model.Requirement)

	// GenerateSchedule rebuilds the candidate pool and reports whether a
	// candidate satisfying every requirement was found. On failure the best
	// valid candidate, if any, is still selected as the current schedule.
	GenerateSchedule() bool

	CurrentSchedule() (model.Schedule, bool)
	AllPossibleSchedules() []model.Schedule
	BuildPQTree() *pqtree.Tree

	Courses() []model.Course
	Teachers() []model.Teacher
	Sections() []model.Section
	Requirements() []model.Requirement

	Clear()
}

type Options struct {
	Logger      *zap.Logger
	MaxSections int
}

// New builds a scheduler. Generation is deterministic: the engine relies on
// exhaustive frontier enumeration, never on random reordering, so repeated
// runs over unchanged registrations produce equivalent candidate pools.
func New(options Options) Scheduler {
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.MaxSections <= 0 {
		options.MaxSections = DefaultMaxSections
	}
	return &classScheduler{
		logger:      options.Logger,
		maxSections: options.MaxSections,
		courses:     make(map[string]model.Course),
		teachers:    make(map[string]model.Teacher),
	}
}

// classScheduler guards all state with a single lock: registration and a
// running generation mutually exclude, and one run is atomic.
type classScheduler struct {
	mu          sync.Mutex
	logger      *zap.Logger
	maxSections int

	courses      map[string]model.Course
	teachers     map[string]model.Teacher
	sections     []model.Section
	requirements []model.Requirement

	current *model.Schedule
	pool    []model.Schedule
}

func (s *classScheduler) AddCourse(course model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[course.Code]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCourse, course.Code)
	}
	s.courses[course.Code] = course
	return nil
}

func (s *classScheduler) AddTeacher(teacher model.Teacher) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teachers[teacher.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTeacher, teacher.ID)
	}
	s.teachers[teacher.ID] = teacher
	return nil
}

func (s *classScheduler) AddSection(section model.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[section.CourseCode]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCourse, section.CourseCode)
	}
	teacher, ok := s.teachers[section.TeacherID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTeacher, section.TeacherID)
	}
	if lo.SomeBy(s.sections, func(existing model.Section) bool { return existing.ID == section.ID }) {
		return fmt.Errorf("%w: %s", ErrDuplicateSection, section.ID)
	}

	s.sections = append(s.sections, section)

	// Registering a section also records the course on its teacher.
	if !slices.Contains(teacher.Courses, section.CourseCode) {
		teacher.Courses = append(teacher.Courses, section.CourseCode)
		s.teachers[section.TeacherID] = teacher
	}
	return nil
}

func (s *classScheduler) AddRequirement(requirement model.Requirement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requirements = append(s.requirements, requirement)
}

func (s *classScheduler) GenerateSchedule() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pool = nil
	s.current = nil

	if len(s.sections) == 0 {
		s.logger.Info("no sections registered, nothing to schedule")
		return false
	}
	if len(s.sections) > s.maxSections {
		s.logger.Error("section count exceeds enumeration bound",
			zap.Int("sections", len(s.sections)),
			zap.Int("max", s.maxSections))
		return false
	}

	tree, byLabel := s.buildTimeOrderedTree()
	pins := s.sectionPins()

	dropped := 0
	for _, frontier := range tree.Frontiers() {
		ordered, ok := mapFrontier(frontier, byLabel)
		if !ok {
			dropped++
			continue
		}

		candidate := tryScheduleWithTimes(ordered, pins)
		if candidate.IsEmpty() {
			continue
		}
		s.addCandidate(candidate)
	}
	if dropped > 0 {
		s.logger.Warn("dropped orderings with unmappable labels", zap.Int("count", dropped))
	}

	for _, base := range slices.Clone(s.pool) {
		for _, variant := range scheduleVariants(base, pins) {
			if !variant.HasConflicts() {
				s.addCandidate(variant)
			}
		}
	}

	s.logger.Info("candidate pool built",
		zap.Int("candidates", len(s.pool)),
		zap.Int("requirements", len(s.requirements)))

	for i, candidate := range s.pool {
		if s.satisfiesAll(candidate) {
			s.current = &s.pool[i]
			s.logger.Info("schedule satisfies all requirements", zap.String("schedule", candidate.ID))
			return true
		}
	}

	if len(s.pool) > 0 {
		s.current = &s.pool[0]
		s.logger.Warn("no candidate satisfies all requirements, falling back to first valid candidate",
			zap.String("schedule", s.pool[0].ID))
	}
	return false
}

func (s *classScheduler) CurrentSchedule() (model.Schedule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return model.Schedule{}, false
	}
	return *s.current, true
}

func (s *classScheduler) AllPossibleSchedules() []model.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.pool)
}

// BuildPQTree exposes the precedence tree over the registered sections, for
// inspection by callers.
func (s *classScheduler) BuildPQTree() *pqtree.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	tree, _ := s.buildTimeOrderedTree()
	return tree
}

func (s *classScheduler) Courses() []model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedValues(s.courses, func(course model.Course) string { return course.Code })
}

func (s *classScheduler) Teachers() []model.Teacher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedValues(s.teachers, func(teacher model.Teacher) string { return teacher.ID })
}

func (s *classScheduler) Sections() []model.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.sections)
}

func (s *classScheduler) Requirements() []model.Requirement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requirements)
}

func (s *classScheduler) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.courses = make(map[string]model.Course)
	s.teachers = make(map[string]model.Teacher)
	s.sections = nil
	s.requirements = nil
	s.pool = nil
	s.current = nil
}

// buildTimeOrderedTree sorts sections by currently-known (day, start) and
// builds a single Q-node of canonical leaves, so the admitted orderings are
// the time order and its reverse. The label index maps frontiers back.
func (s *classScheduler) buildTimeOrderedTree() (*pqtree.Tree, map[string]model.Section) {
	ordered := slices.Clone(s.sections)
	slices.SortStableFunc(ordered, func(a, b model.Section) int {
		if a.Slot.Day() != b.Slot.Day() {
			return int(a.Slot.Day()) - int(b.Slot.Day())
		}
		return a.Slot.StartMinutes() - b.Slot.StartMinutes()
	})

	root := pqtree.NewQ()
	byLabel := make(map[string]model.Section, len(ordered))
	for _, section := range ordered {
		label := s.labelFor(section)
		root.AddChild(pqtree.NewLeaf(label))
		byLabel[label] = section
	}
	return pqtree.NewWithRoot(root), byLabel
}

func (s *classScheduler) labelFor(section model.Section) string {
	return section.Label(s.teachers[section.TeacherID].Name)
}

// sectionPins collects the slots demanded by section-level pin requirements,
// keyed by section id.
func (s *classScheduler) sectionPins() map[string]model.TimeSlot {
	pins := make(map[string]model.TimeSlot)
	for _, requirement := range s.requirements {
		if pin, ok := requirement.(model.SectionTimeSlotRequirement); ok {
			pins[pin.SectionID] = pin.Slot
		}
	}
	return pins
}

func (s *classScheduler) addCandidate(candidate model.Schedule) {
	duplicate := lo.SomeBy(s.pool, func(existing model.Schedule) bool {
		return model.Equivalent(existing, candidate)
	})
	if !duplicate {
		s.pool = append(s.pool, candidate)
	}
}

func (s *classScheduler) satisfiesAll(candidate model.Schedule) bool {
	return !lo.SomeBy(s.requirements, func(requirement model.Requirement) bool {
		return !requirement.Satisfied(candidate)
	})
}

// mapFrontier resolves each leaf label to its section. One unmappable label
// invalidates the whole ordering; the caller counts those.
func mapFrontier(frontier []string, byLabel map[string]model.Section) ([]model.Section, bool) {
	ordered := make([]model.Section, 0, len(frontier))
	for _, label := range frontier {
		section, ok := byLabel[label]
		if !ok {
			return nil, false
		}
		ordered = append(ordered, section)
	}
	return ordered, true
}

// variantOffsets are the bounded day/time reassignments tried per unpinned
// section: next day at the same time, two days on at 09:00, three days on
// at 14:00.
var variantOffsets = []struct {
	dayShift  int
	hour      int
	keepStart bool
}{
	{dayShift: 1, keepStart: true},
	{dayShift: 2, hour: 9},
	{dayShift: 3, hour: 14},
}

// scheduleVariants derives alternative placements from an accepted base
// schedule, moving one unpinned section at a time.
func scheduleVariants(base model.Schedule, pins map[string]model.TimeSlot) []model.Schedule {
	var variants []model.Schedule
	for i, section := range base.Sections {
		if _, pinned := pins[section.ID]; pinned {
			continue
		}
		if !section.Slot.HasDay() {
			continue
		}

		for _, offset := range variantOffsets {
			day := model.Day((int(section.Slot.Day()) + offset.dayShift) % model.Weekdays)
			slot := section.Slot.WithDay(day)
			if !offset.keepStart {
				slot = slot.WithStart(offset.hour, 0)
			}

			sections := slices.Clone(base.Sections)
			sections[i] = section.WithSlot(slot)
			variants = append(variants, model.NewSchedule(sections))
		}
	}
	return variants
}

func sortedValues[V any](values map[string]V, key func(V) string) []V {
	result := lo.Values(values)
	slices.SortFunc(result, func(a, b V) int {
		switch {
		case key(a) < key(b):
			return -1
		case key(a) > key(b):
			return 1
		default:
			return 0
		}
	})
	return result
}
