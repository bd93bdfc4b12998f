package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

// Client клиент Google Calendar API для одного календаря
type Client struct {
	calendarID string
	events     *calendar.EventsService
	timeout    time.Duration
	log        Logger
}

// NewClient создает клиент календаря calendarID
// opts передаются в calendar.NewService (авторизация, endpoint)
func NewClient(ctx context.Context, calendarID string, timeout time.Duration, log Logger, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}

	return &Client{
		calendarID: calendarID,
		events:     calendar.NewEventsService(svc),
		timeout:    timeout,
		log:        log,
	}, nil
}

// ListEvents возвращает события, пересекающие [TimeMin, TimeMax)
// Повторяющиеся события разворачиваются в отдельные экземпляры, все страницы выбираются
func (c *Client) ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	call := c.events.List(c.calendarID).
		TimeMin(query.TimeMin.Format(time.RFC3339)).
		TimeMax(query.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy(orderByStartTime)
	if query.TimeZone != "" {
		call = call.TimeZone(query.TimeZone)
	}

	var events []domain.CalendarEvent
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			event, err := toDomainEvent(item)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
			}
			events = append(events, event)
		}
		return nil
	})
	if err != nil {
		c.log.Error("ListEvents: calendar=%s range=[%s, %s): %v",
			c.calendarID, query.TimeMin.Format(time.RFC3339), query.TimeMax.Format(time.RFC3339), err)
		return nil, mapError(err)
	}

	return events, nil
}

// InsertEvent создает событие с заданным ID без рассылки приглашений
// Повторный ID возвращает ErrEventConflict
func (c *Client) InsertEvent(ctx context.Context, event *domain.NewEvent) (*domain.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	created, err := c.events.Insert(c.calendarID, fromNewEvent(event)).
		SendUpdates(sendUpdatesNone).
		Context(ctx).
		Do()
	if err != nil {
		mapped := mapError(err)
		if errors.Is(mapped, ErrEventConflict) {
			c.log.Warn("InsertEvent: event id=%s already exists in calendar=%s", event.ID, c.calendarID)
		} else {
			c.log.Error("InsertEvent: calendar=%s id=%s: %v", c.calendarID, event.ID, err)
		}
		return nil, mapped
	}

	result, err := toDomainEvent(created)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	c.log.Info("InsertEvent: created event id=%s in calendar=%s", result.ID, c.calendarID)
	return &result, nil
}

// mapError переводит ошибки Google API в ошибки клиента
func mapError(err error) error {
	if errors.Is(err, ErrInvalidResponse) {
		return err
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	// Обработка статус-кодов
	switch apiErr.Code {
	case http.StatusConflict:
		return ErrEventConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrCalendarNotFound, apiErr.Message)
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, apiErr.Code, apiErr.Message)
	}
}
