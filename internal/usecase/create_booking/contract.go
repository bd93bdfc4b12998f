package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

// CalendarService интерфейс сервиса календаря
type CalendarService interface {
	// BusyIntervals возвращает занятые интервалы календарного дня
	BusyIntervals(ctx context.Context, day time.Time) ([]domain.TimeInterval, error)
	// InsertEvent идемпотентно записывает событие по детерминированному ID
	InsertEvent(ctx context.Context, event *domain.NewEvent) (*domain.CalendarEvent, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	GetByID(id string) (domain.ServiceDefinition, error)
}

// DayLocker интерфейс краткосрочной блокировки дня (опционально)
type DayLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error)
	Unlock(ctx context.Context, key, token string) error
}

// Metrics интерфейс для метрик бронирований (опционально)
type Metrics interface {
	IncBooking(serviceID, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
