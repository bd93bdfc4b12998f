package domain

import (
	"errors"
	"time"
)

// ErrInvalidInterval is returned when start is not strictly before end
var ErrInvalidInterval = errors.New("interval: start must be before end")

// TimeInterval represents a half-open span [Start, End) in absolute time.
// Location is used for display only, comparisons are done on instants.
type TimeInterval struct {
	Start    time.Time
	End      time.Time
	Location *time.Location
}

// NewTimeInterval creates an interval, start must be strictly before end
func NewTimeInterval(start, end time.Time, loc *time.Location) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, ErrInvalidInterval
	}
	if loc == nil {
		loc = start.Location()
	}
	return TimeInterval{
		Start:    start.In(loc),
		End:      end.In(loc),
		Location: loc,
	}, nil
}

// Overlaps returns true if the intervals share at least one instant.
//
// Examples:
// - [10:00, 10:30) and [10:15, 10:45) → overlap
// - [10:00, 10:30) and [10:30, 11:00) → no overlap (back-to-back)
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains returns true if t is within [Start, End)
func (i TimeInterval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// ContainsInterval returns true if other lies entirely within the interval
func (i TimeInterval) ContainsInterval(other TimeInterval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// Duration returns the length of the interval
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// In returns the same interval rendered in another location
func (i TimeInterval) In(loc *time.Location) TimeInterval {
	return TimeInterval{
		Start:    i.Start.In(loc),
		End:      i.End.In(loc),
		Location: loc,
	}
}

// IsZero returns true for an uninitialized interval
func (i TimeInterval) IsZero() bool {
	return i.Start.IsZero() && i.End.IsZero()
}

// OverlapsAny returns true if candidate overlaps at least one of the busy intervals
func OverlapsAny(busy []TimeInterval, candidate TimeInterval) bool {
	for _, b := range busy {
		if b.Overlaps(candidate) {
			return true
		}
	}
	return false
}
