package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ConsultBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Некорректное тело запроса"
	msgInvalidInput       = "Укажите имя, контакт и выберите слот"
	msgServiceNotFound    = "Услуга не найдена"
	msgInvalidSlotFormat  = "Неверный формат времени слота"
	msgNonWorkingDay      = "Запись доступна только в рабочие дни Пн–Пт"
	msgOutOfHours         = "Слот выходит за рамки рабочего времени"
	msgTooLateToBook      = "Слишком поздно для записи на этот слот"
	msgSlotConflict       = "Слот уже занят, выберите другое время"
	msgDuplicateBooking   = "Этот слот уже занят"
	msgBookingInProgress  = "Слот сейчас бронирует другой клиент, попробуйте через несколько секунд"
	msgGatewayError       = "Не удалось создать бронь, попробуйте позже"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: service_id=%s, error=%v", req.ServiceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidSlotFormat):
			h.logger.Warn("POST /bookings - Invalid slot format: slot=%q", req.Slot)
			handlers.RespondBadRequest(w, msgInvalidSlotFormat)

		case errors.Is(err, createBooking.ErrNonWorkingDay):
			h.logger.Warn("POST /bookings - Non-working day: slot=%s", req.Slot)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, createBooking.ErrOutOfHours):
			h.logger.Warn("POST /bookings - Out of working hours: service_id=%s, slot=%s", req.ServiceID, req.Slot)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: slot=%s", req.Slot)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: service_id=%s, slot=%s", req.ServiceID, req.Slot)
			handlers.RespondErrorWithCode(w, http.StatusConflict, handlers.CodeSlotConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /bookings - Duplicate booking: service_id=%s, slot=%s", req.ServiceID, req.Slot)
			handlers.RespondErrorWithCode(w, http.StatusConflict, handlers.CodeDuplicateBooking, msgDuplicateBooking)

		case errors.Is(err, createBooking.ErrBookingInProgress):
			h.logger.Warn("POST /bookings - Booking in progress: slot=%s", req.Slot)
			handlers.RespondErrorWithCode(w, http.StatusConflict, handlers.CodeBookingInProgress, msgBookingInProgress)

		case errors.Is(err, createBooking.ErrGateway):
			h.logger.Error("POST /bookings - Calendar gateway error: service_id=%s, slot=%s, error=%v",
				req.ServiceID, req.Slot, err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayError)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service_id=%s, slot=%s, error=%v",
				req.ServiceID, req.Slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: event_id=%s, service_id=%s, start=%s",
		result.EventID, result.ServiceID, response.Start)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
