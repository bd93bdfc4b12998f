package get_available_slots

import (
	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ConsultBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string   `json:"date"`
	ServiceID string   `json:"serviceId"`
	TimeZone  string   `json:"timezone"`
	Slots     []string `json:"slots"` // ["2024-11-25T10:00:00.000+03:00", ...]
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(serviceID, date string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.Format(domain.SlotTimeFormat)
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date,
		ServiceID: resp.ServiceID,
		TimeZone:  resp.TimeZone,
		Slots:     slots,
	}
}
