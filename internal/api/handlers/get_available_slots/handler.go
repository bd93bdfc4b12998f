package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ConsultBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingParams   = "Укажите услугу и дату"
	msgInvalidDate     = "Неверная дата"
	msgServiceNotFound = "Услуга не найдена"
	msgGatewayError    = "Не удалось получить расписание, попробуйте позже"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := r.URL.Query().Get("serviceId")
	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(serviceID, date))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Missing parameters: service_id=%q, date=%q", serviceID, date)
			handlers.RespondBadRequest(w, msgMissingParams)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /slots - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /slots - Invalid date: date=%q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrGateway):
			h.logger.Error("GET /slots - Calendar gateway error: service_id=%s, date=%s, error=%v", serviceID, date, err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayError)

		default:
			h.logger.Error("GET /slots - Failed to get slots: service_id=%s, date=%s, error=%v", serviceID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: service_id=%s, date=%s, count=%d",
		serviceID, result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
