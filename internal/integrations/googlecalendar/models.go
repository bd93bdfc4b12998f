package googlecalendar

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

const (
	orderByStartTime = "startTime"
	sendUpdatesNone  = "none"
)

// toDomainEvent конвертирует событие Google Calendar в доменную модель
func toDomainEvent(item *calendar.Event) (domain.CalendarEvent, error) {
	start, err := toEventTime(item.Start)
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("event %s start: %w", item.Id, err)
	}
	end, err := toEventTime(item.End)
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("event %s end: %w", item.Id, err)
	}

	event := domain.CalendarEvent{
		ID:           item.Id,
		Summary:      item.Summary,
		Description:  item.Description,
		Start:        start,
		End:          end,
		Status:       item.Status,
		Transparency: item.Transparency,
	}

	if item.ExtendedProperties != nil && len(item.ExtendedProperties.Private) > 0 {
		event.PrivateProperties = item.ExtendedProperties.Private
	}

	if item.Created != "" {
		if created, err := time.Parse(time.RFC3339, item.Created); err == nil {
			event.CreatedAt = created
		}
	}

	return event, nil
}

func toEventTime(t *calendar.EventDateTime) (domain.EventTime, error) {
	if t == nil {
		return domain.EventTime{}, nil
	}
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		if err != nil {
			return domain.EventTime{}, err
		}
		return domain.EventTime{DateTime: parsed}, nil
	}
	return domain.EventTime{Date: t.Date}, nil
}

// fromNewEvent собирает событие Google Calendar для вставки
func fromNewEvent(e *domain.NewEvent) *calendar.Event {
	event := &calendar.Event{
		Id:          e.ID,
		Summary:     e.Summary,
		Description: e.Description,
		Start: &calendar.EventDateTime{
			DateTime: e.Start.Format(time.RFC3339),
			TimeZone: e.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: e.End.Format(time.RFC3339),
			TimeZone: e.TimeZone,
		},
	}

	if len(e.PrivateProperties) > 0 {
		event.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: e.PrivateProperties,
		}
	}

	return event
}
