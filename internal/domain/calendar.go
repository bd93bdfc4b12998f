package domain

import (
	"errors"
	"time"
)

// ErrEventConflict is matched (errors.Is) by every calendar gateway
// when an event with the same id already exists in the store
var ErrEventConflict = errors.New("calendar: event with this id already exists")

// Event statuses and transparency values as published by calendar stores
const (
	EventStatusConfirmed         = "confirmed"
	EventStatusCancelled         = "cancelled"
	EventTransparencyOpaque      = "opaque"
	EventTransparencyTransparent = "transparent"
)

// BookingKeyProperty is the private extended property holding the booking key
const BookingKeyProperty = "bookingKey"

// EventTime is a calendar event boundary: either a timed instant or an all-day date
type EventTime struct {
	DateTime time.Time // zero for all-day events
	Date     string    // YYYY-MM-DD, set for all-day events only
}

// IsAllDay returns true if the boundary is a date without time
func (t EventTime) IsAllDay() bool {
	return t.DateTime.IsZero() && t.Date != ""
}

// IsZero returns true if the boundary carries neither a time nor a date
func (t EventTime) IsZero() bool {
	return t.DateTime.IsZero() && t.Date == ""
}

// CalendarEvent represents an event stored in the external calendar
type CalendarEvent struct {
	ID                string
	Summary           string
	Description       string
	Start             EventTime
	End               EventTime
	Status            string
	Transparency      string
	PrivateProperties map[string]string
	CreatedAt         time.Time
}

// IsBusy returns true if the event blocks time (not cancelled and not marked as free).
// Transparent events are free on purpose: calendar owners mark them "Show as available".
func (e *CalendarEvent) IsBusy() bool {
	return e.Status != EventStatusCancelled && e.Transparency != EventTransparencyTransparent
}

// EventQuery selects events overlapping [TimeMin, TimeMax)
type EventQuery struct {
	TimeMin  time.Time
	TimeMax  time.Time
	TimeZone string
}

// NewEvent is an event to insert with a caller-supplied deterministic ID
type NewEvent struct {
	ID                string
	Summary           string
	Description       string
	Start             time.Time
	End               time.Time
	TimeZone          string
	PrivateProperties map[string]string
}
