package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

// UseCase use case для получения доступных слотов для бронирования
// Результат носит рекомендательный характер: окончательная проверка выполняется при записи
type UseCase struct {
	calendar     CalendarService
	catalog      ServiceCatalog
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendar CalendarService,
	catalog ServiceCatalog,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendar:     calendar,
		catalog:      catalog,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalog.GetByID(req.ServiceID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: service id=%s not found: %v", req.ServiceID, err)
		return nil, ErrServiceNotFound
	}

	// 3. Нормализуем день
	day, err := parseDay(req.Date, uc.schedule.Location)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 4. Вычисляем свободные слоты
	slots, err := uc.listSlots(ctx, day, service)
	if err != nil {
		return nil, err
	}

	return &Response{
		Date:      day.Format(domain.DateFormat),
		ServiceID: service.ID,
		TimeZone:  uc.schedule.Location.String(),
		Slots:     slots,
	}, nil
}

// ListAvailableSlots возвращает начала свободных слотов услуги на день dateISO
// Выходной день или пустое рабочее окно дают пустой список без обращения к календарю
func (uc *UseCase) ListAvailableSlots(ctx context.Context, dateISO string, service domain.ServiceDefinition) ([]time.Time, error) {
	day, err := parseDay(dateISO, uc.schedule.Location)
	if err != nil {
		uc.logger.Warn("ListAvailableSlots: %v", err)
		return nil, err
	}

	return uc.listSlots(ctx, day, service)
}

func (uc *UseCase) listSlots(ctx context.Context, day time.Time, service domain.ServiceDefinition) ([]time.Time, error) {
	dayStr := day.Format(domain.DateFormat)

	// 1. Выходной день
	if !uc.schedule.IsWorkingDay(day) {
		uc.logger.Info("ListAvailableSlots: %s is not a working day", dayStr)
		return []time.Time{}, nil
	}

	// 2. Рабочее окно дня
	window, ok := uc.schedule.WorkingWindow(day)
	if !ok {
		uc.logger.Warn("ListAvailableSlots: empty working window on %s", dayStr)
		return []time.Time{}, nil
	}

	// 3. Кандидаты с шагом сетки, прошедшее время и минимальный запас отсекаются только если включены
	earliest := uc.schedule.EarliestStart(uc.timeProvider.Now())
	candidates := candidateSlots(window, service.Duration(), uc.schedule.SlotInterval, earliest)
	if len(candidates) == 0 {
		uc.logger.Info("ListAvailableSlots: no candidate slots for service=%s on %s", service.ID, dayStr)
		return []time.Time{}, nil
	}

	// 4. Свежая занятость из календаря
	busy, err := uc.calendar.BusyIntervals(ctx, day)
	if err != nil {
		uc.logger.Error("ListAvailableSlots: failed to get busy intervals for %s: %v", dayStr, err)
		return nil, fmt.Errorf("%w: failed to get busy intervals: %v", ErrGateway, err)
	}

	// 5. Отбрасываем пересечения
	slots := freeSlots(candidates, service.Duration(), busy)

	uc.logger.Info("ListAvailableSlots: %d of %d slots free for service=%s on %s",
		len(slots), len(candidates), service.ID, dayStr)
	return slots, nil
}
