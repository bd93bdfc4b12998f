package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
	calendarService "github.com/m04kA/SMC-ConsultBooking/internal/service/calendar"
)

// Результаты попытки бронирования для метрик
const (
	resultCreated    = "created"
	resultRejected   = "rejected"
	resultConflict   = "conflict"
	resultDuplicate  = "duplicate"
	resultInProgress = "in_progress"
	resultError      = "error"
)

// UseCase use case для создания бронирования
// Проверка свободного слота носит рекомендательный характер,
// точка линеаризации - вставка события с детерминированным ID
type UseCase struct {
	calendar     CalendarService
	catalog      ServiceCatalog
	schedule     domain.Schedule
	locker       DayLocker
	lockPrefix   string
	lockTTL      time.Duration
	metrics      Metrics
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

// WithDayLock включает блокировку дня на время проверки и записи
// Ключ блокировки: "<keyPrefix>:<YYYY-MM-DD>"
func (uc *UseCase) WithDayLock(locker DayLocker, keyPrefix string, ttl time.Duration) *UseCase {
	uc.locker = locker
	uc.lockPrefix = keyPrefix
	uc.lockTTL = ttl
	return uc
}

// WithMetrics включает метрики результатов бронирования
func (uc *UseCase) WithMetrics(metrics Metrics) *UseCase {
	uc.metrics = metrics
	return uc
}

// Execute выполняет use case создания бронирования
// Requested → Validating → {Rejected | Validated} → Committing → {Committed | Conflict | TransientFailure}
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, slot=%s", req.ServiceID, req.SlotStart)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.record(req.ServiceID, err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalog.GetByID(req.ServiceID)
	if err != nil {
		uc.logger.Warn("CreateBooking: service id=%s not found: %v", req.ServiceID, err)
		uc.record(req.ServiceID, ErrServiceNotFound)
		return nil, ErrServiceNotFound
	}

	// 3. Разбираем начало слота (нужно для ключа блокировки)
	start, err := parseSlotStart(req.SlotStart, uc.schedule.Location)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		uc.record(service.ID, err)
		return nil, err
	}

	// 4. Блокировка дня (если включена)
	unlock, err := uc.lockDay(ctx, start)
	if err != nil {
		uc.record(service.ID, err)
		return nil, err
	}
	defer unlock()

	// 5. Проверяем слот по свежей занятости календаря
	slot, err := uc.assertSlotIsFree(ctx, start, service)
	if err != nil {
		uc.record(service.ID, err)
		return nil, err
	}

	// 6. Записываем событие
	resp, err := uc.CreateBooking(ctx, slot, service, domain.Booker{
		Name:    req.Name,
		Contact: req.Contact,
		Comment: req.Comment,
	})
	uc.record(service.ID, err)
	return resp, err
}

// AssertSlotIsFree проверяет слот на момент записи и возвращает интервал [start, start+duration)
// Каждая причина отказа возвращается отдельной ошибкой
func (uc *UseCase) AssertSlotIsFree(ctx context.Context, slotStartISO string, service domain.ServiceDefinition) (domain.TimeInterval, error) {
	start, err := parseSlotStart(slotStartISO, uc.schedule.Location)
	if err != nil {
		uc.logger.Warn("AssertSlotIsFree: %v", err)
		return domain.TimeInterval{}, err
	}

	return uc.assertSlotIsFree(ctx, start, service)
}

func (uc *UseCase) assertSlotIsFree(ctx context.Context, start time.Time, service domain.ServiceDefinition) (domain.TimeInterval, error) {
	startStr := start.Format(domain.SlotTimeFormat)

	// 1. Рабочий день
	if !uc.schedule.IsWorkingDay(start) {
		uc.logger.Warn("AssertSlotIsFree: %s is not a working day", startStr)
		return domain.TimeInterval{}, ErrNonWorkingDay
	}

	// 2. Слот целиком внутри рабочего окна
	window, ok := uc.schedule.WorkingWindow(start)
	if !ok {
		uc.logger.Warn("AssertSlotIsFree: empty working window for %s", startStr)
		return domain.TimeInterval{}, ErrOutOfHours
	}

	slot, err := domain.NewTimeInterval(start, start.Add(service.Duration()), uc.schedule.Location)
	if err != nil {
		uc.logger.Warn("AssertSlotIsFree: invalid duration %d for service=%s", service.DurationMinutes, service.ID)
		return domain.TimeInterval{}, fmt.Errorf("%w: invalid service duration", ErrOutOfHours)
	}

	if !window.Contains(slot.Start) || slot.End.After(window.End) {
		uc.logger.Warn("AssertSlotIsFree: slot [%s, %s) is outside working hours [%s, %s)",
			startStr, slot.End.Format(domain.SlotTimeFormat),
			window.Start.Format(domain.TimeFormat), window.End.Format(domain.TimeFormat))
		return domain.TimeInterval{}, ErrOutOfHours
	}

	// 3. Слот не в прошлом и не раньше минимального запаса (если ограничение включено)
	earliest := uc.schedule.EarliestStart(uc.timeProvider.Now())
	if !earliest.IsZero() && slot.Start.Before(earliest) {
		uc.logger.Warn("AssertSlotIsFree: slot %s starts before %s", startStr, earliest.Format(domain.SlotTimeFormat))
		return domain.TimeInterval{}, ErrTooLateToBook
	}

	// 4. Свежая занятость дня
	busy, err := uc.calendar.BusyIntervals(ctx, start)
	if err != nil {
		uc.logger.Error("AssertSlotIsFree: failed to get busy intervals: %v", err)
		return domain.TimeInterval{}, fmt.Errorf("%w: failed to get busy intervals: %v", ErrGateway, err)
	}

	// 5. Пересечение с занятыми интервалами
	if domain.OverlapsAny(busy, slot) {
		uc.logger.Warn("AssertSlotIsFree: slot %s for service=%s overlaps a busy interval", startStr, service.ID)
		return domain.TimeInterval{}, ErrSlotConflict
	}

	return slot, nil
}

// CreateBooking записывает событие с детерминированным ID
// Повторная запись той же услуги на то же время возвращает ErrDuplicateBooking, повторов нет
func (uc *UseCase) CreateBooking(ctx context.Context, slot domain.TimeInterval, service domain.ServiceDefinition, booker domain.Booker) (*Response, error) {
	slot = slot.In(uc.schedule.Location)
	startISO := slot.Start.Format(domain.SlotTimeFormat)
	bookingKey := BuildBookingKey(service.ID, startISO)

	event := &domain.NewEvent{
		ID:          BuildEventID(service.ID, startISO),
		Summary:     buildSummary(service, booker),
		Description: buildDescription(service, booker),
		Start:       slot.Start,
		End:         slot.End,
		TimeZone:    uc.schedule.Location.String(),
		PrivateProperties: map[string]string{
			domain.BookingKeyProperty: bookingKey,
		},
	}

	created, err := uc.calendar.InsertEvent(ctx, event)
	if err != nil {
		if errors.Is(err, calendarService.ErrEventConflict) || errors.Is(err, domain.ErrEventConflict) {
			uc.logger.Warn("CreateBooking: event id=%s already exists (key=%s)", event.ID, bookingKey)
			return nil, ErrDuplicateBooking
		}
		uc.logger.Error("CreateBooking: failed to insert event id=%s: %v", event.ID, err)
		return nil, fmt.Errorf("%w: failed to insert event: %v", ErrGateway, err)
	}

	uc.logger.Info("CreateBooking: booked service=%s at %s, event id=%s", service.ID, startISO, created.ID)

	return &Response{
		EventID:   created.ID,
		ServiceID: service.ID,
		Start:     slot.Start,
		End:       slot.End,
	}, nil
}

// lockDay захватывает блокировку дня слота, возвращает функцию снятия
// Недоступность Redis не блокирует запись: корректность обеспечивает ID события
func (uc *UseCase) lockDay(ctx context.Context, start time.Time) (func(), error) {
	if uc.locker == nil {
		return func() {}, nil
	}

	key := uc.lockPrefix + ":" + start.In(uc.schedule.Location).Format(domain.DateFormat)

	token, acquired, err := uc.locker.TryLock(ctx, key, uc.lockTTL)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to lock %s, continuing without lock: %v", key, err)
		return func() {}, nil
	}
	if !acquired {
		uc.logger.Warn("CreateBooking: %s is locked by another request", key)
		return nil, ErrBookingInProgress
	}

	return func() {
		if err := uc.locker.Unlock(context.WithoutCancel(ctx), key, token); err != nil {
			uc.logger.Warn("CreateBooking: failed to unlock %s: %v", key, err)
		}
	}, nil
}

func (uc *UseCase) record(serviceID string, err error) {
	if uc.metrics == nil {
		return
	}

	var result string
	switch {
	case err == nil:
		result = resultCreated
	case errors.Is(err, ErrSlotConflict):
		result = resultConflict
	case errors.Is(err, ErrDuplicateBooking):
		result = resultDuplicate
	case errors.Is(err, ErrBookingInProgress):
		result = resultInProgress
	case errors.Is(err, ErrGateway):
		result = resultError
	default:
		result = resultRejected
	}

	// неизвестные услуги не должны раздувать кардинальность метрик
	if errors.Is(err, ErrServiceNotFound) || errors.Is(err, ErrInvalidInput) {
		serviceID = "unknown"
	}

	uc.metrics.IncBooking(serviceID, result)
}
