package catalog

import (
	"fmt"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

// Service неизменяемый каталог услуг
// Заполняется один раз при старте и безопасен для конкурентного чтения
type Service struct {
	services []domain.ServiceDefinition
	byID     map[string]int
	logger   Logger
}

// NewService создает каталог из списка услуг
// Пустой список заменяется встроенным каталогом DefaultServices
func NewService(definitions []domain.ServiceDefinition, logger Logger) (*Service, error) {
	if len(definitions) == 0 {
		logger.Info("NewService: no services configured, using built-in catalog")
		definitions = DefaultServices()
	}

	s := &Service{
		services: make([]domain.ServiceDefinition, 0, len(definitions)),
		byID:     make(map[string]int, len(definitions)),
		logger:   logger,
	}

	for _, def := range definitions {
		if def.ID == "" || def.Title == "" {
			return nil, fmt.Errorf("%w: id and title are required", ErrInvalidService)
		}
		if def.DurationMinutes < domain.MinServiceDurationMinutes || def.DurationMinutes > domain.MaxServiceDurationMinutes {
			return nil, fmt.Errorf("%w: service %q: duration %d out of range", ErrInvalidService, def.ID, def.DurationMinutes)
		}
		if _, exists := s.byID[def.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateService, def.ID)
		}
		s.byID[def.ID] = len(s.services)
		s.services = append(s.services, def)
	}

	logger.Info("NewService: catalog loaded with %d services", len(s.services))
	return s, nil
}

// GetByID возвращает услугу по идентификатору
func (s *Service) GetByID(id string) (domain.ServiceDefinition, error) {
	idx, ok := s.byID[id]
	if !ok {
		s.logger.Warn("GetByID: service id=%s not found", id)
		return domain.ServiceDefinition{}, ErrServiceNotFound
	}
	return s.services[idx], nil
}

// List возвращает услуги в порядке объявления
func (s *Service) List() []domain.ServiceDefinition {
	out := make([]domain.ServiceDefinition, len(s.services))
	copy(out, s.services)
	return out
}
