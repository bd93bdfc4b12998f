package googlecalendar

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

var (
	// ErrEventConflict возвращается, когда событие с таким ID уже есть в календаре (HTTP 409)
	ErrEventConflict = fmt.Errorf("googlecalendar client: %w", domain.ErrEventConflict)

	// ErrUnauthorized возвращается, когда сервисный аккаунт не имеет доступа к календарю
	ErrUnauthorized = errors.New("googlecalendar client: unauthorized")

	// ErrCalendarNotFound возвращается, когда календарь не найден
	ErrCalendarNotFound = errors.New("googlecalendar client: calendar not found")

	// ErrInvalidCredentials возвращается при неполных учетных данных сервисного аккаунта
	ErrInvalidCredentials = errors.New("googlecalendar client: invalid credentials")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Google Calendar
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")
)
