package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

// Кроме YYYY-MM-DD принимаем полную метку времени, от нее берется календарный день
var timestampLayouts = []string{
	domain.SlotTimeFormat,
	time.RFC3339Nano,
	time.RFC3339,
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// parseDay разбирает дату и возвращает полночь этого дня в loc
func parseDay(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)

	if d, err := time.ParseInLocation(domain.DateFormat, value, loc); err == nil {
		return d, nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			local := t.In(loc)
			return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}
