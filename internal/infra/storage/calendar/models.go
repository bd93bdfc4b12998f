package calendar

import (
	"time"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

// eventRow строка таблицы calendar_events
type eventRow struct {
	ID                string
	Summary           string
	Description       string
	StartAt           time.Time
	EndAt             time.Time
	AllDay            bool
	TimeZone          string
	Status            string
	Transparency      string
	PrivateProperties map[string]string
	CreatedAt         time.Time
}

// toDomain конвертирует строку в доменное событие
// Для событий на весь день границы отдаются датами в часовом поясе события
func (r eventRow) toDomain() domain.CalendarEvent {
	event := domain.CalendarEvent{
		ID:                r.ID,
		Summary:           r.Summary,
		Description:       r.Description,
		Status:            r.Status,
		Transparency:      r.Transparency,
		PrivateProperties: r.PrivateProperties,
		CreatedAt:         r.CreatedAt,
	}

	if !r.AllDay {
		event.Start = domain.EventTime{DateTime: r.StartAt}
		event.End = domain.EventTime{DateTime: r.EndAt}
		return event
	}

	loc, err := time.LoadLocation(r.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	event.Start = domain.EventTime{Date: r.StartAt.In(loc).Format(domain.DateFormat)}
	event.End = domain.EventTime{Date: r.EndAt.In(loc).Format(domain.DateFormat)}
	return event
}
