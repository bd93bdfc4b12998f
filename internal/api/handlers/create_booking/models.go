package create_booking

import (
	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-ConsultBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID string `json:"serviceId"`
	Slot      string `json:"slot"` // "2024-11-25T10:00:00.000+03:00"
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Comment   string `json:"comment,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	OK        bool   `json:"ok"`
	EventID   string `json:"eventId"`
	ServiceID string `json:"serviceId"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ServiceID: r.ServiceID,
		SlotStart: r.Slot,
		Name:      r.Name,
		Contact:   r.Contact,
		Comment:   r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		OK:        true,
		EventID:   resp.EventID,
		ServiceID: resp.ServiceID,
		Start:     resp.Start.Format(domain.SlotTimeFormat),
		End:       resp.End.Format(domain.SlotTimeFormat),
	}
}
