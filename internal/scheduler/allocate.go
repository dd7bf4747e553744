package scheduler

import (
	"slices"

	"github.com/hassan-31x/ds2-project/internal/model"
)

// tryScheduleWithTimes turns one section ordering into a concrete candidate.
// Pinned sections go first at their required day/time; the rest are packed
// greedily, longest first, onto the day whose watermark is lowest. A
// candidate whose pins collide is discarded whole rather than repaired.
func tryScheduleWithTimes(ordered []model.Section, pins map[string]model.TimeSlot) model.Schedule {
	var watermarks [model.Weekdays]int
	for day := range watermarks {
		watermarks[day] = model.WorkdayStart
	}

	// A pin without a day cannot anchor a placement; such sections stay
	// flexible and the requirement matches whatever day they land on.
	var pinned, flexible []model.Section
	for _, section := range ordered {
		if pin, ok := pins[section.ID]; ok && pin.HasDay() {
			pinned = append(pinned, section)
		} else {
			flexible = append(flexible, section)
		}
	}

	placed := make([]model.Section, 0, len(ordered))

	for _, section := range pinned {
		pin := pins[section.ID]
		day := pin.Day()

		// A day-only pin starts at the day's watermark.
		start := watermarks[day]
		if pin.HasStart() {
			start = pin.StartMinutes()
		}

		slot := section.Slot.WithDay(day).WithStartMinutes(start)
		placed = append(placed, section.WithSlot(slot))
		watermarks[day] = max(watermarks[day], start+slot.DurationMinutes())
	}

	// Longest first reduces fragmentation across the week.
	slices.SortStableFunc(flexible, func(a, b model.Section) int {
		return b.Slot.DurationMinutes() - a.Slot.DurationMinutes()
	})

	for _, section := range flexible {
		day := leastLoadedDay(watermarks)
		slot := section.Slot.WithDay(day).WithStartMinutes(watermarks[day])
		placed = append(placed, section.WithSlot(slot))
		watermarks[day] += slot.DurationMinutes()
	}

	schedule := model.NewSchedule(placed)
	if schedule.HasConflicts() {
		return model.Schedule{}
	}
	return schedule
}

// leastLoadedDay picks the day with the smallest watermark; the earliest
// day wins ties, keeping allocation deterministic.
func leastLoadedDay(watermarks [model.Weekdays]int) model.Day {
	best := 0
	for day := 1; day < len(watermarks); day++ {
		if watermarks[day] < watermarks[best] {
			best = day
		}
	}
	return model.Day(best)
}
