package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

const (
	operationListEvents  = "list_events"
	operationInsertEvent = "insert_event"

	resultOK       = "ok"
	resultConflict = "conflict"
	resultError    = "error"
)

// Service читает занятость и записывает события через Gateway
// Кеша нет: каждый вызов BusyIntervals идет в календарь
type Service struct {
	gateway  Gateway
	location *time.Location
	metrics  Metrics
	logger   Logger
}

// NewService создает сервис календаря
// metrics может быть nil
func NewService(gateway Gateway, location *time.Location, metrics Metrics, logger Logger) *Service {
	return &Service{
		gateway:  gateway,
		location: location,
		metrics:  metrics,
		logger:   logger,
	}
}

// Location часовой пояс календаря
func (s *Service) Location() *time.Location {
	return s.location
}

// BusyIntervals возвращает занятые интервалы календарного дня day (в часовом поясе сервиса)
// Один запрос к календарю от начала дня до начала следующего дня
func (s *Service) BusyIntervals(ctx context.Context, day time.Time) ([]domain.TimeInterval, error) {
	local := day.In(s.location)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.location)
	dayEnd := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, s.location)

	query := domain.EventQuery{
		TimeMin:  dayStart,
		TimeMax:  dayEnd,
		TimeZone: s.location.String(),
	}

	started := time.Now()
	events, err := s.gateway.ListEvents(ctx, query)
	if err != nil {
		s.observe(operationListEvents, resultError, started)
		s.logger.Error("BusyIntervals: failed to list events for %s: %v", dayStart.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: BusyIntervals - list events: %v", ErrGateway, err)
	}
	s.observe(operationListEvents, resultOK, started)

	busy := make([]domain.TimeInterval, 0, len(events))
	for i := range events {
		event := &events[i]
		// отмененные и помеченные "свободно" (transparent) события время не занимают
		if !event.IsBusy() {
			continue
		}
		interval, ok := s.eventInterval(event)
		if !ok {
			s.logger.Warn("BusyIntervals: skipping event id=%s with invalid boundaries", event.ID)
			continue
		}
		busy = append(busy, interval)
	}

	s.logger.Info("BusyIntervals: %d busy intervals on %s (%d events)",
		len(busy), dayStart.Format(domain.DateFormat), len(events))
	return busy, nil
}

// InsertEvent записывает событие с детерминированным ID
// Повтор ID возвращает ErrEventConflict
func (s *Service) InsertEvent(ctx context.Context, event *domain.NewEvent) (*domain.CalendarEvent, error) {
	started := time.Now()
	created, err := s.gateway.InsertEvent(ctx, event)
	if err != nil {
		if errors.Is(err, domain.ErrEventConflict) {
			s.observe(operationInsertEvent, resultConflict, started)
			s.logger.Warn("InsertEvent: event id=%s already exists", event.ID)
			return nil, ErrEventConflict
		}
		s.observe(operationInsertEvent, resultError, started)
		s.logger.Error("InsertEvent: failed to insert event id=%s: %v", event.ID, err)
		return nil, fmt.Errorf("%w: InsertEvent - insert event: %v", ErrGateway, err)
	}
	s.observe(operationInsertEvent, resultOK, started)

	s.logger.Info("InsertEvent: event id=%s created", created.ID)
	return created, nil
}

// eventInterval переводит границы события в интервал
// Событие на весь день занимает [date 00:00, endDate 00:00) в часовом поясе сервиса
func (s *Service) eventInterval(event *domain.CalendarEvent) (domain.TimeInterval, bool) {
	start, ok := s.boundary(event.Start)
	if !ok {
		return domain.TimeInterval{}, false
	}
	end, ok := s.boundary(event.End)
	if !ok {
		return domain.TimeInterval{}, false
	}

	interval, err := domain.NewTimeInterval(start, end, s.location)
	if err != nil {
		return domain.TimeInterval{}, false
	}
	return interval, true
}

func (s *Service) boundary(t domain.EventTime) (time.Time, bool) {
	if !t.DateTime.IsZero() {
		return t.DateTime, true
	}
	if t.Date == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(domain.DateFormat, t.Date, s.location)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func (s *Service) observe(operation, result string, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveCalendarCall(operation, result, time.Since(started).Seconds())
}
