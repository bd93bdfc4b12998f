package list_services

import "github.com/m04kA/SMC-ConsultBooking/internal/domain"

// ServiceResponse HTTP модель услуги
type ServiceResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           string `json:"price,omitempty"`
	Description     string `json:"description,omitempty"`
}

// ServicesListResponse HTTP response model
type ServicesListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomain конвертирует каталог в HTTP response
func FromDomain(defs []domain.ServiceDefinition) *ServicesListResponse {
	services := make([]ServiceResponse, len(defs))
	for i, d := range defs {
		services[i] = ServiceResponse{
			ID:              d.ID,
			Title:           d.Title,
			DurationMinutes: d.DurationMinutes,
			Price:           d.Price,
			Description:     d.Description,
		}
	}
	return &ServicesListResponse{Services: services}
}
