package domain

import (
	"fmt"
	"time"
)

// ClockTime represents a time of day (HH:MM) without a date
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a "HH:MM" string
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// MustParseClockTime is like ParseClockTime but panics on error
func MustParseClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the "HH:MM" representation
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns minutes since midnight
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Schedule describes when bookings may happen.
// Built once from configuration and passed to the availability and booking use cases.
type Schedule struct {
	Location     *time.Location
	WorkingDays  []int // ISO weekdays: 1 = Monday ... 7 = Sunday
	DayStart     ClockTime
	DayEnd       ClockTime
	SlotInterval time.Duration
	MinNotice    time.Duration
	RejectPast   bool // hide and refuse slots that already started
}

// ISOWeekday returns the weekday of t using the 1 = Monday ... 7 = Sunday convention
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// StartOfDay returns midnight of t's calendar day in the schedule location
func (s Schedule) StartOfDay(t time.Time) time.Time {
	local := t.In(s.Location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.Location)
}

// DayBounds returns [start of day, start of next day) for t's calendar day
func (s Schedule) DayBounds(t time.Time) (time.Time, time.Time) {
	start := s.StartOfDay(t)
	end := time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, s.Location)
	return start, end
}

// IsWorkingDay returns true if the weekday of day (in the schedule location) is a working day
func (s Schedule) IsWorkingDay(day time.Time) bool {
	wd := ISOWeekday(day.In(s.Location))
	for _, d := range s.WorkingDays {
		if d == wd {
			return true
		}
	}
	return false
}

// EarliestStart returns the earliest bookable slot start for the given moment.
// Zero time means no restriction: RejectPast is off and MinNotice is zero.
func (s Schedule) EarliestStart(now time.Time) time.Time {
	if !s.RejectPast && s.MinNotice <= 0 {
		return time.Time{}
	}
	return now.Add(s.MinNotice)
}

// WorkingWindow returns the working hours of day's calendar date.
// ok is false when the configured window is degenerate (start is not before end).
func (s Schedule) WorkingWindow(day time.Time) (window TimeInterval, ok bool) {
	midnight := s.StartOfDay(day)
	start := time.Date(midnight.Year(), midnight.Month(), midnight.Day(),
		s.DayStart.Hour, s.DayStart.Minute, 0, 0, s.Location)
	end := time.Date(midnight.Year(), midnight.Month(), midnight.Day(),
		s.DayEnd.Hour, s.DayEnd.Minute, 0, 0, s.Location)

	window, err := NewTimeInterval(start, end, s.Location)
	if err != nil {
		return TimeInterval{}, false
	}
	return window, true
}
