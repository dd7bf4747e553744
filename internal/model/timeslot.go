package model

import (
	"fmt"
	"strconv"
	"strings"
)

type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	DayUnassigned
)

// Weekdays is the number of schedulable days (Monday through Friday).
const Weekdays = 5

// WorkdayStart is the first schedulable minute of a day (08:00).
const WorkdayStart = 8 * 60

const startUnassigned = -1

var dayNames = [Weekdays]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

func (d Day) String() string {
	if d < Monday || d > Friday {
		return "Unassigned"
	}
	return dayNames[d]
}

// ParseDay maps an abbreviated or full weekday name to its Day. An empty
// string parses to DayUnassigned.
func ParseDay(name string) (Day, error) {
	if name == "" {
		return DayUnassigned, nil
	}
	for i, abbreviation := range dayNames {
		if strings.EqualFold(name, abbreviation) ||
			(len(name) > 3 && strings.EqualFold(name[:3], abbreviation)) {
			return Day(i), nil
		}
	}
	return DayUnassigned, fmt.Errorf("%q is not a valid day", name)
}

// TimeSlot is an immutable day/start/duration value. The start is stored as
// minutes from midnight; a slot built from a duration alone carries no day
// and no start until scheduling completes it.
type TimeSlot struct {
	day      Day
	start    int
	duration int
}

// NewTimeSlot creates a duration-only slot with unassigned day and start.
func NewTimeSlot(durationMinutes int) TimeSlot {
	return TimeSlot{
		day:      DayUnassigned,
		start:    startUnassigned,
		duration: durationMinutes,
	}
}

// NewTimeSlotAt creates a fully assigned slot.
func NewTimeSlotAt(day Day, hour, minute, durationMinutes int) TimeSlot {
	return TimeSlot{
		day:      day,
		start:    hour*60 + minute,
		duration: durationMinutes,
	}
}

func (t TimeSlot) Day() Day {
	return t.day
}

func (t TimeSlot) HasDay() bool {
	return t.day != DayUnassigned
}

func (t TimeSlot) HasStart() bool {
	return t.start != startUnassigned
}

// StartMinutes returns the start as minutes from midnight, or -1 when the
// slot has no start.
func (t TimeSlot) StartMinutes() int {
	return t.start
}

func (t TimeSlot) StartHour() int {
	if !t.HasStart() {
		return startUnassigned
	}
	return t.start / 60
}

func (t TimeSlot) StartMinute() int {
	if !t.HasStart() {
		return startUnassigned
	}
	return t.start % 60
}

func (t TimeSlot) DurationMinutes() int {
	return t.duration
}

// EndMinutes returns the half-open end of the slot in minutes from midnight,
// or -1 when the slot has no start.
func (t TimeSlot) EndMinutes() int {
	if !t.HasStart() {
		return startUnassigned
	}
	return t.start + t.duration
}

func (t TimeSlot) WithDay(day Day) TimeSlot {
	t.day = day
	return t
}

func (t TimeSlot) WithStart(hour, minute int) TimeSlot {
	t.start = hour*60 + minute
	return t
}

// WithStartMinutes sets the start from minutes-from-midnight.
func (t TimeSlot) WithStartMinutes(minutes int) TimeSlot {
	t.start = minutes
	return t
}

// Overlaps reports whether two slots intersect. It is defined only for slots
// carrying both day and start: any slot missing either never overlaps.
func (t TimeSlot) Overlaps(other TimeSlot) bool {
	if !t.HasDay() || !t.HasStart() || !other.HasDay() || !other.HasStart() {
		return false
	}
	if t.day != other.day {
		return false
	}
	return t.start < other.EndMinutes() && other.start < t.EndMinutes()
}

// String renders the slot in the 12-hour format used by canonical section
// labels, e.g. "Mon 9:00 AM - 10:00 AM". Partial slots render what they have.
func (t TimeSlot) String() string {
	if !t.HasStart() {
		return fmt.Sprintf("%v (%v min)", t.day, t.duration)
	}
	return fmt.Sprintf("%v %v - %v", t.day, formatClock(t.start), formatClock(t.EndMinutes()))
}

func formatClock(minutes int) string {
	hour, minute := minutes/60, minutes%60
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, meridiem)
}

// ParseClock parses a 24-hour "H:MM" string into hour and minute.
func ParseClock(clock string) (hour, minute int, err error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q is not a valid time", clock)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a valid time: %w", clock, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a valid time: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%q is out of range", clock)
	}
	return hour, minute, nil
}
