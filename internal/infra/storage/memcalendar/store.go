package memcalendar

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

// Store календарь в памяти процесса
// Используется для локального запуска и тестов, данные теряются при рестарте
type Store struct {
	mu     sync.RWMutex
	events map[string]domain.CalendarEvent
	now    func() time.Time
}

// NewStore создает пустой календарь
func NewStore() *Store {
	return &Store{
		events: make(map[string]domain.CalendarEvent),
		now:    time.Now,
	}
}

// Add добавляет произвольное событие (в том числе на весь день) без проверки конфликта ID
func (s *Store) Add(event domain.CalendarEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID] = copyEvent(event)
}

// ListEvents возвращает события, пересекающие [TimeMin, TimeMax), по возрастанию начала
func (s *Store) ListEvents(ctx context.Context, q domain.EventQuery) ([]domain.CalendarEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loc := time.UTC
	if q.TimeZone != "" {
		if l, err := time.LoadLocation(q.TimeZone); err == nil {
			loc = l
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.CalendarEvent, 0)
	for _, event := range s.events {
		start, end, ok := bounds(event, loc)
		if !ok {
			continue
		}
		if start.Before(q.TimeMax) && end.After(q.TimeMin) {
			result = append(result, copyEvent(event))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		si, _, _ := bounds(result[i], loc)
		sj, _, _ := bounds(result[j], loc)
		if si.Equal(sj) {
			return result[i].ID < result[j].ID
		}
		return si.Before(sj)
	})

	return result, nil
}

// InsertEvent вставляет событие, повторный ID возвращает ErrEventConflict
func (s *Store) InsertEvent(ctx context.Context, event *domain.NewEvent) (*domain.CalendarEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if event.ID == "" || !event.Start.Before(event.End) {
		return nil, ErrInvalidEvent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[event.ID]; exists {
		return nil, ErrEventConflict
	}

	props := make(map[string]string, len(event.PrivateProperties))
	for k, v := range event.PrivateProperties {
		props[k] = v
	}

	created := domain.CalendarEvent{
		ID:                event.ID,
		Summary:           event.Summary,
		Description:       event.Description,
		Start:             domain.EventTime{DateTime: event.Start},
		End:               domain.EventTime{DateTime: event.End},
		Status:            domain.EventStatusConfirmed,
		Transparency:      domain.EventTransparencyOpaque,
		PrivateProperties: props,
		CreatedAt:         s.now(),
	}
	s.events[event.ID] = created

	result := copyEvent(created)
	return &result, nil
}

// Len количество событий в календаре
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

func bounds(event domain.CalendarEvent, loc *time.Location) (time.Time, time.Time, bool) {
	start, ok := boundary(event.Start, loc)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := boundary(event.End, loc)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func boundary(t domain.EventTime, loc *time.Location) (time.Time, bool) {
	if !t.DateTime.IsZero() {
		return t.DateTime, true
	}
	if t.Date == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(domain.DateFormat, t.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func copyEvent(e domain.CalendarEvent) domain.CalendarEvent {
	if e.PrivateProperties != nil {
		props := make(map[string]string, len(e.PrivateProperties))
		for k, v := range e.PrivateProperties {
			props[k] = v
		}
		e.PrivateProperties = props
	}
	return e
}
