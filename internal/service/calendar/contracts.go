package calendar

import (
	"context"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

// Gateway интерфейс внешнего календаря
// Вставка идемпотентна по ID: повторный ID возвращает ошибку, совместимую с domain.ErrEventConflict
type Gateway interface {
	ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.CalendarEvent, error)
	InsertEvent(ctx context.Context, event *domain.NewEvent) (*domain.CalendarEvent, error)
}

// Metrics интерфейс для метрик вызовов календаря
type Metrics interface {
	ObserveCalendarCall(operation, result string, seconds float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
