package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

// CalendarService интерфейс сервиса занятости календаря
type CalendarService interface {
	// BusyIntervals возвращает занятые интервалы календарного дня
	BusyIntervals(ctx context.Context, day time.Time) ([]domain.TimeInterval, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	GetByID(id string) (domain.ServiceDefinition, error)
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
