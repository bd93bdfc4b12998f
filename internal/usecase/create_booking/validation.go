package create_booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var slotLayouts = []string{
	domain.SlotTimeFormat,
	time.RFC3339Nano,
	time.RFC3339,
}

// localSlotLayouts время без смещения трактуется в часовом поясе расписания
var localSlotLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// normalizeRequest обрезает пробелы во всех полях запроса
func normalizeRequest(req *Request) {
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.SlotStart = strings.TrimSpace(req.SlotStart)
	req.Name = strings.TrimSpace(req.Name)
	req.Contact = strings.TrimSpace(req.Contact)
	req.Comment = strings.TrimSpace(req.Comment)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	normalizeRequest(req)

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: field %s failed on '%s'", ErrInvalidInput, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// parseSlotStart разбирает начало слота и переводит его в loc
func parseSlotStart(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range slotLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(loc), nil
		}
	}
	for _, layout := range localSlotLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidSlotFormat, value)
}
