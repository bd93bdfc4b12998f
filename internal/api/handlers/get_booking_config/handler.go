package get_booking_config

import (
	"net/http"

	"github.com/m04kA/SMC-ConsultBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

type Handler struct {
	response *BookingConfigResponse
	logger   Logger
}

// NewHandler расписание неизменно после старта, ответ строится один раз
func NewHandler(schedule domain.Schedule, logger Logger) *Handler {
	return &Handler{
		response: FromSchedule(schedule),
		logger:   logger,
	}
}

// Handle GET /api/v1/config
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /config - Booking config retrieved: timezone=%s", h.response.TimeZone)
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
